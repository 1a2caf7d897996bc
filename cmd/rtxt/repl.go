package main

import "fmt"
import "strings"

import "github.com/chzyer/readline"
import "github.com/pterm/pterm"

const replHelp = `Each input line is laid out as markup, after the previous lines.
Commands:
  :save [file]   render the text and write it as a PNG
  :clear         discard the text
  :stats         print the line metrics
  :quit          exit (also <ctrl>D)`

// Reads markup lines and commands until the user quits.
func (self *app) REPL() error {
	repl, err := readline.New("rtxt > ")
	if err != nil { return err }
	defer repl.Close()

	pterm.Info.Println("Type :help for the commands, quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { break } // io.EOF or interrupt
		quit, err := self.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit { break }
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// Runs a single REPL input line. Returns true when the user quits.
func (self *app) execute(line string) (bool, error) {
	command, isCommand := strings.CutPrefix(strings.TrimSpace(line), ":")
	if !isCommand {
		err := self.add(line)
		if err != nil { return false, err }
		doc := self.session.Document()
		pterm.Printf("%d lines, text size %dx%d\n", len(doc.Lines), doc.TextSize.Width, doc.TextSize.Height)
		return false, nil
	}

	name, arg, _ := strings.Cut(command, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "quit", "q":
		return true, nil
	case "help":
		pterm.Println(replHelp)
	case "clear":
		self.session.Reset()
	case "stats":
		printStats(self.session.Document())
	case "save":
		path := self.cfg.out
		if arg != "" { path = arg }
		return false, self.save(path)
	default:
		return false, fmt.Errorf("unknown command ':%s'", name)
	}
	return false, nil
}
