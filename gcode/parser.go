package gcode

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Parser reads motion-command text line by line. Lines that start with
// a paren comment are skipped whole, `;` starts a trailing comment, and
// lines carrying no recognizable words are ignored rather than rejected
// (program headers, tool tables and the like).
type Parser struct{ br *bufio.Reader }

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

var rxWord = regexp.MustCompile(`[A-Z][-+]?[0-9]*\.?[0-9]+`)

func (p *Parser) Read() (ln Block, err error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(strings.TrimSpace(s), "(") {
			continue
		}

		s = strings.SplitN(s, ";", 2)[0]
		s = strings.TrimSpace(s)
		s = strings.ToUpper(s)

		if s == "" {
			continue
		}

		codes := rxWord.FindAllString(s, -1)
		if len(codes) == 0 {
			continue
		}

		res := make(Block, len(codes))
		for i, c := range codes {
			res[i].W = c[0]
			res[i].Arg, err = strconv.ParseFloat(c[1:], 64)
			if err != nil {
				return nil, err
			}
		}

		return res, nil
	}
}
