package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/flbulgarelli/formulario"
	"github.com/flbulgarelli/formulario/pkg/field"
	"github.com/flbulgarelli/formulario/pkg/form"
)

func main() {
	source := flag.String("source", "form.yml", "form spec path (YAML or JSON)")
	output := flag.String("output", "", "answers file (stdout if empty)")
	flag.Parse()

	data, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Failed to read spec: %v", err)
	}

	loaded, err := parseSpec(*source, data)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	if title := formTitle(loaded); title != "" {
		fmt.Println(title)
	}

	answers, err := collectAnswers(loaded)
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	normalized, err := loaded.Normalize(answers)
	if err != nil {
		log.Fatalf("Failed to normalize answers: %v", err)
	}

	payload, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode answers: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(payload, '\n'), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Answers written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func parseSpec(path string, data []byte) (*form.Form, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formulario.LoadJSON(data)
	default:
		return formulario.LoadYAML(data)
	}
}

func formTitle(loaded *form.Form) string {
	if loaded.DisplayName != "" {
		return loaded.DisplayName
	}
	return loaded.Name
}

func collectAnswers(loaded *form.Form) (map[string]string, error) {
	answers := make(map[string]string, loaded.Size())
	for _, target := range loaded.Fields {
		value, err := ask(target, target.Name())
		if err != nil {
			return nil, err
		}
		if target.Confirm() {
			for {
				repeat, err := ask(target, "Confirm "+target.Name())
				if err != nil {
					return nil, err
				}
				if repeat == value {
					break
				}
				fmt.Println("Values do not match, try again.")
			}
		}
		answers[target.Name()] = value
	}
	return answers, nil
}

func ask(target field.Field, message string) (string, error) {
	var prompt survey.Prompt
	switch target.Type() {
	case field.TypeTextArea:
		prompt = &survey.Multiline{Message: message}
	default:
		prompt = &survey.Input{Message: message}
	}

	var opts []survey.AskOpt
	if target.Required() {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if target.Type() == field.TypeNumber {
		opts = append(opts, survey.WithValidator(numeric))
	}

	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", err
	}
	return out, nil
}

func numeric(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("value must be numeric")
	}
	return nil
}
