package parse

import "github.com/jedit-io/jedit/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
