package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/contactbook/contactbook/internal/config"
	"github.com/contactbook/contactbook/pkg/contact"
	"github.com/contactbook/contactbook/pkg/report"
)

// printResult writes v in the given format. A nil contact or list prints "null".
func printResult(w io.Writer, format string, v any) error {
	if isNil(v) {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return printText(w, v)
	}
}

func isNil(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case []contact.Contact:
		return v == nil
	case *contact.Contact:
		return v == nil
	case *report.ValidationResult:
		return v == nil
	}
	return false
}

func printText(w io.Writer, v any) error {
	switch v := v.(type) {
	case []contact.Contact:
		if len(v) == 0 {
			_, err := fmt.Fprintln(w, "[]")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE")
		for _, c := range v {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone)
		}
		return tw.Flush()

	case *contact.Contact:
		_, err := fmt.Fprintf(w, "id:    %s\nname:  %s\nemail: %s\nphone: %s\n", v.ID, v.Name, v.Email, v.Phone)
		return err

	case *report.ValidationResult:
		return printReport(w, v)

	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

func printReport(w io.Writer, res *report.ValidationResult) error {
	if res.Success {
		fmt.Fprintln(w, "✅ STORE CHECK PASSED")
	} else {
		fmt.Fprintln(w, "❌ STORE CHECK FAILED")
	}

	for _, issue := range res.Issues {
		icon := "⚠️"
		if issue.Severity == report.SeverityError {
			icon = "❌"
		}
		where := issue.Record
		if issue.Field != "" {
			if where != "" {
				where += "."
			}
			where += issue.Field
		}
		if where != "" {
			where = " [" + where + "]"
		}
		if _, err := fmt.Fprintf(w, "%s %s%s: %s\n", icon, issue.Code, where, issue.Message); err != nil {
			return err
		}
	}
	return nil
}
