package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wooorm/textom-link-node/parser"
	"github.com/wooorm/textom-link-node/parser/linknode"
	"github.com/wooorm/textom-link-node/parser/source"
	"github.com/wooorm/textom-link-node/parser/textom"
)

type options struct {
	format  string
	json    bool
	dump    bool
	verbose bool
	path    string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.format, "format", "auto", "input format: auto, text, html, markdown, docx or pdf")
	flag.BoolVar(&o.json, "json", false, "print every link node as a JSON line")
	flag.BoolVar(&o.dump, "dump", false, "pretty-print the whole tree")
	flag.BoolVar(&o.verbose, "v", false, "log debug output")
	flag.Parse()
	o.path = flag.Arg(0)
	return o
}

func main() {
	o := parseFlags()
	if o.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(o, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

func run(o options, w io.Writer) error {
	format, err := resolveFormat(o.format, o.path)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if o.path != "" && o.path != "-" {
		f, err := os.Open(o.path)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer f.Close()
		in = f
	}

	p, err := parser.NewParser(textom.New(textom.WithLogger(logrus.StandardLogger())))
	if err != nil {
		return err
	}
	root, err := p.ParseDocument(format, in)
	if err != nil {
		return err
	}

	if o.dump {
		pp.Fprintln(w, root.ValueOf())
	}

	links := parser.Links(root)
	for _, l := range links {
		if err := printLink(w, l, o.json); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"format": format,
		"links":  len(links),
	}).Debug("[CLI]: done")
	if !o.json {
		fmt.Fprintf(w, "%s link nodes in %s characters\n", humanize.Comma(int64(len(links))), humanize.Comma(int64(len(root.String()))))
	}
	return nil
}

func resolveFormat(name, path string) (source.Format, error) {
	if name == "" || name == "auto" {
		return source.FormatFromFilename(path), nil
	}
	return source.ParseFormat(name)
}

func printLink(w io.Writer, l *linknode.LinkNode, asJSON bool) error {
	if asJSON {
		b, err := json.Marshal(l.ValueOf())
		if err != nil {
			return errors.Wrap(err, "could not encode link node")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	kind := "relative"
	if l.IsAbsolute() {
		kind = "absolute"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", kind, l.String(), l.Data.String("hostname"))
	return err
}
