package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"quantum-exchange/models"
	"quantum-exchange/utils"
)

// Prompter reads answers line by line, so file names may contain spaces
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// PromptInput prompts the user for input with a default value
func (p *Prompter) PromptInput(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [default: %s]: ", ColorSection(prompt), ColorHighlight(defaultValue))
	} else {
		fmt.Fprintf(p.out, "%s: ", ColorSection(prompt))
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// PromptExchangeSetup asks for any of protocol, file and recipient that cfg
// does not already carry. The protocol always has a default, so askProtocol
// says whether the user still has to confirm it. Invalid answers are asked
// again.
func (p *Prompter) PromptExchangeSetup(cfg *models.Config, askProtocol bool) error {
	PrintSectionHeader(p.out, "Exchange Setup")
	defer PrintSectionFooter(p.out)

	for askProtocol {
		answer, err := p.PromptInput("Protocol (BB84, E91, BBM92, Six-state)", cfg.Protocol)
		if err != nil {
			return err
		}
		if _, err := models.ParseProtocol(answer); err != nil {
			fmt.Fprintln(p.out, ColorError("  "+err.Error()))
			continue
		}
		cfg.Protocol = answer
		askProtocol = false
	}

	for cfg.FilePath == "" {
		answer, err := p.PromptInput("File to send", "")
		if err != nil {
			return err
		}
		if _, err := utils.StatFile(answer); err != nil {
			fmt.Fprintln(p.out, ColorError("  "+err.Error()))
			continue
		}
		cfg.FilePath = answer
	}

	for strings.TrimSpace(cfg.Recipient) == "" {
		answer, err := p.PromptInput("Recipient's quantum key", "")
		if err != nil {
			return err
		}
		if answer == "" {
			fmt.Fprintln(p.out, ColorError("  A recipient key is required!"))
			continue
		}
		cfg.Recipient = answer
	}
	return nil
}
