package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/option"
	"github.com/npillmayer/wordsiv/engine/filter"
	"github.com/npillmayer/wordsiv/engine/model"
)

// settings are the options changed with "set" and "unset".
type settings struct {
	filter   filter.Options
	uniform  bool
	keepCase bool
}

var settingKeys = []string{
	"upper", "lower", "cap", "minlen", "maxlen", "len", "minwidth", "maxwidth",
	"width", "tolerance", "top", "must", "mustall", "position", "uniform", "keepcase",
}

func (s *settings) set(key, value string) (err error) {
	o := &s.filter
	switch strings.ToLower(key) {
	case "upper":
		o.Upper, o.Lower, o.Capitalize = true, false, false
	case "lower":
		o.Upper, o.Lower, o.Capitalize = false, true, false
	case "cap":
		o.Upper, o.Lower, o.Capitalize = false, false, true
	case "minlen":
		o.MinLength, err = parseInt(key, value)
	case "maxlen":
		o.MaxLength, err = parseInt(key, value)
	case "len":
		o.Length, err = parseInt(key, value)
	case "minwidth":
		o.MinWidth, err = parseFloat(key, value)
	case "maxwidth":
		o.MaxWidth, err = parseFloat(key, value)
	case "width":
		o.Width, err = parseFloat(key, value)
	case "tolerance":
		o.WidthTolerance, err = parseFloat(key, value)
	case "top":
		o.Top, err = parseInt(key, value)
	case "must":
		if value == "" {
			return fmt.Errorf("must: glyphs missing")
		}
		o.Must = value
	case "mustall":
		o.MustAll = true
	case "position":
		o.Position, err = glyphs.ParsePosition(value)
	case "uniform":
		s.uniform = true
	case "keepcase":
		s.keepCase = true
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return err
}

func (s *settings) unset(key string) error {
	o := &s.filter
	switch strings.ToLower(key) {
	case "upper", "lower", "cap", "case":
		o.Upper, o.Lower, o.Capitalize = false, false, false
	case "minlen":
		o.MinLength = option.Int{}
	case "maxlen":
		o.MaxLength = option.Int{}
	case "len":
		o.Length = option.Int{}
	case "minwidth":
		o.MinWidth = option.Float{}
	case "maxwidth":
		o.MaxWidth = option.Float{}
	case "width":
		o.Width = option.Float{}
	case "tolerance":
		o.WidthTolerance = option.Float{}
	case "top":
		o.Top = option.Int{}
	case "must":
		o.Must, o.Position = "", ""
	case "mustall":
		o.MustAll = false
	case "position":
		o.Position = ""
	case "uniform":
		s.uniform = false
	case "keepcase":
		s.keepCase = false
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

func (s *settings) get(key string) string {
	o := s.filter
	switch strings.ToLower(key) {
	case "upper":
		return strconv.FormatBool(o.Upper)
	case "lower":
		return strconv.FormatBool(o.Lower)
	case "cap":
		return strconv.FormatBool(o.Capitalize)
	case "minlen":
		return o.MinLength.String()
	case "maxlen":
		return o.MaxLength.String()
	case "len":
		return o.Length.String()
	case "minwidth":
		return o.MinWidth.String()
	case "maxwidth":
		return o.MaxWidth.String()
	case "width":
		return o.Width.String()
	case "tolerance":
		return o.WidthTolerance.String()
	case "top":
		return o.Top.String()
	case "must":
		return strconv.Quote(o.Must)
	case "mustall":
		return strconv.FormatBool(o.MustAll)
	case "position":
		return string(o.Position)
	case "uniform":
		return strconv.FormatBool(s.uniform)
	case "keepcase":
		return strconv.FormatBool(s.keepCase)
	}
	return "?"
}

func (s *settings) wordOptions() model.WordOptions {
	return model.WordOptions{Uniform: s.uniform, Filter: s.filter}
}

func (s *settings) wordsOptions() model.WordsOptions {
	return model.WordsOptions{Uniform: s.uniform, Filter: s.filter}
}

func (s *settings) sentenceOptions() model.SentenceOptions {
	return model.SentenceOptions{KeepCase: s.keepCase, Uniform: s.uniform, Filter: s.filter}
}

func parseInt(key, value string) (option.Int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return option.Int{}, fmt.Errorf("%s: not a number: %q", key, value)
	}
	return option.SomeInt(n), nil
}

func parseFloat(key, value string) (option.Float, error) {
	x, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return option.Float{}, fmt.Errorf("%s: not a number: %q", key, value)
	}
	return option.SomeFloat(x), nil
}
