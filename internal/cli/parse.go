package cli

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatXML  = "xml"
	formatYAML = "yaml"
)

func (a *app) parseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <type> <value>",
		Short: "Normalize a value and print its parts",
		Example: `  domainctl parse postcode sw1a1aa -o json
  domainctl parse isbn 9783161484100 -o xml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			view, err := k.parse(args[1])
			if err != nil {
				return errors.New(a.describe(err))
			}
			return render(cmd.OutOrStdout(), format, view)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "output format: text, json, xml or yaml")
	return cmd
}

func render(w io.Writer, format string, v valueView) error {
	switch format {
	case formatText:
		return renderText(w, v)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatXML:
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, v valueView) error {
	lines := [][2]string{{"value", fmt.Sprint(v.Value)}}
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, [2]string{label, value})
		}
	}
	add("symbology", v.Symbology)
	if v.Length > 0 {
		add("length", fmt.Sprint(v.Length))
	}
	if v.CheckDigit != nil {
		add("check digit", fmt.Sprint(*v.CheckDigit))
	}
	if v.Prefix > 0 {
		add("prefix", fmt.Sprint(v.Prefix))
	}
	add("outward", v.Outward)
	add("inward", v.Inward)
	add("area", v.Area)
	add("district", v.District)
	add("sector", v.Sector)
	add("unit", v.Unit)

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}
	return nil
}
