package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/wordsiv/engine/model"
	"github.com/pterm/pterm"
)

// Command is a parsed input line.
type Command struct {
	code int
	name string
	args []string
}

func (cmd *Command) String() string {
	return fmt.Sprintf("%s%v", cmd.name, cmd.args)
}

const (
	QUIT int = iota
	HELP
	WORD
	WORDS
	SENTENCE
	PARAGRAPH
	SEQUENCE
	SET
	UNSET
	SHOW
)

var opMap = map[string]int{
	"quit":     QUIT,
	"exit":     QUIT,
	"help":     HELP,
	"word":     WORD,
	"words":    WORDS,
	"sentence": SENTENCE,
	"para":     PARAGRAPH,
	"seq":      SEQUENCE,
	"set":      SET,
	"unset":    UNSET,
	"show":     SHOW,
}

var commandFn = map[int]func(*Intp, *Command) (bool, error){
	QUIT:      quitOp,
	HELP:      helpOp,
	WORD:      wordOp,
	WORDS:     wordsOp,
	SENTENCE:  sentenceOp,
	PARAGRAPH: paragraphOp,
	SEQUENCE:  sequenceOp,
	SET:       setOp,
	UNSET:     unsetOp,
	SHOW:      showOp,
}

// parseCommand splits a line into a command word and its arguments.
// Unknown commands are mapped to HELP.
func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	name := strings.ToLower(fields[0])
	code, ok := opMap[name]
	if !ok {
		tracer().Infof("unknown command %q", name)
		code = HELP
	}
	return &Command{code: code, name: name, args: fields[1:]}, nil
}

// count returns the first argument as a positive number, or 0.
func (cmd *Command) count() (int, error) {
	if len(cmd.args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: not a count: %q", cmd.name, cmd.args[0])
	}
	return n, nil
}

func quitOp(intp *Intp, cmd *Command) (bool, error) {
	return true, nil
}

func wordOp(intp *Intp, cmd *Command) (bool, error) {
	w, err := intp.random.Word(intp.settings.wordOptions())
	if err != nil {
		return false, err
	}
	pterm.Println(w)
	return false, nil
}

func wordsOp(intp *Intp, cmd *Command) (bool, error) {
	n, err := cmd.count()
	if err != nil {
		return false, err
	}
	o := intp.settings.wordsOptions()
	o.NumWords = n
	words, err := intp.random.Words(o)
	if err != nil {
		return false, err
	}
	pterm.Println(strings.Join(words, " "))
	return false, nil
}

func sentenceOp(intp *Intp, cmd *Command) (bool, error) {
	n, err := cmd.count()
	if err != nil {
		return false, err
	}
	o := intp.settings.sentenceOptions()
	o.NumWords = n
	s, err := intp.random.Sentence(o)
	if err != nil {
		return false, err
	}
	pterm.Println(s)
	return false, nil
}

func paragraphOp(intp *Intp, cmd *Command) (bool, error) {
	n, err := cmd.count()
	if err != nil {
		return false, err
	}
	p, err := model.Paragraph(intp.random, n, intp.settings.sentenceOptions())
	if err != nil {
		return false, err
	}
	pterm.Println(p)
	return false, nil
}

func sequenceOp(intp *Intp, cmd *Command) (bool, error) {
	n, err := cmd.count()
	if err != nil {
		return false, err
	}
	o := intp.settings.sentenceOptions()
	o.NumWords = n
	s, err := intp.sequential.Sentence(o)
	if err != nil {
		return false, err
	}
	pterm.Println(s)
	return false, nil
}

func setOp(intp *Intp, cmd *Command) (bool, error) {
	if len(cmd.args) == 0 {
		return false, fmt.Errorf("usage: set <option> [value]")
	}
	value := strings.Join(cmd.args[1:], " ")
	if err := intp.settings.set(cmd.args[0], value); err != nil {
		return false, err
	}
	tracer().Infof("%s = %s", cmd.args[0], intp.settings.get(cmd.args[0]))
	return false, nil
}

func unsetOp(intp *Intp, cmd *Command) (bool, error) {
	if len(cmd.args) == 0 {
		intp.settings = settings{}
		tracer().Infof("all options cleared")
		return false, nil
	}
	for _, key := range cmd.args {
		if err := intp.settings.unset(key); err != nil {
			return false, err
		}
	}
	return false, nil
}

func showOp(intp *Intp, cmd *Command) (bool, error) {
	fontname := intp.fontname
	if fontname == "" {
		fontname = "(none)"
	}
	data := [][]string{
		{"Option", "Value"},
		{"vocabulary", fmt.Sprintf("lang=%s, bicameral=%v", intp.src.Lang(), intp.src.Bicameral())},
		{"font", fontname},
		{"glyphs", fmt.Sprintf("%d", intp.conf.Glyphs.Len())},
	}
	for _, key := range settingKeys {
		data = append(data, []string{key, intp.settings.get(key)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}
