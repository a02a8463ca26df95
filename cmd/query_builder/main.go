// Command query_builder prints the Elasticsearch query for a company search URL.
//
//	query_builder "/v1/company_query_builder?revenue=1-100&cid=1"
//	query_builder -mapping
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/DjordjeVuckovic/company-query-builder/internal/es"
	"github.com/DjordjeVuckovic/company-query-builder/internal/search"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to query builder YAML config (defaults to built-in settings)")
		mapping    = flag.Bool("mapping", false, "Print the company index mapping instead of a query")
		compact    = flag.Bool("compact", false, "Print compact JSON")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <url_path>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  url_path  URL path with query parameters, e.g. /v1/company_query_builder?revenue=1-100")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var body any
	if *mapping {
		body = es.NewMappingBuilder(cfg).Mapping()
	} else {
		if flag.NArg() != 1 {
			flag.Usage()
			os.Exit(2)
		}
		doc, err := search.NewCompanyQueryBuilder(cfg).BuildFromURL(flag.Arg(0))
		if err != nil {
			slog.Error("Failed to build query", "error", err)
			os.Exit(1)
		}
		body = doc
	}

	if err := write(os.Stdout, body, !*compact); err != nil {
		slog.Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}

func write(w io.Writer, v any, indent bool) error {
	r := es.NewBody(v)
	if !indent {
		_, err := io.Copy(w, r)
		return err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	_, err = out.WriteTo(w)
	return err
}
