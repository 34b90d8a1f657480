// Command pdfextract extracts the text of a PDF into one flat text file,
// with a "--- Page N ---" marker before each page. It is a one-shot batch
// tool used to turn a vocabulary-list PDF into raw text for further
// processing; it is not part of the line protocol.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

func main() {
	in := flag.String("in", "", "source PDF path")
	out := flag.String("out", "", "destination text-file path")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatal("usage: pdfextract -in document.pdf -out text.txt")
	}

	f, r, err := pdf.Open(*in)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *in, err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	var parts []string
	for n := 1; n <= pageCount; n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("page %d: %v (skipped)", n, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, "--- Page "+strconv.Itoa(n)+" ---", text)
	}

	full := strings.Join(parts, "\n")
	if err := os.WriteFile(*out, []byte(full), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}

	log.Printf("extracted %d pages from %s", pageCount, *in)
	log.Printf("saved %d characters to %s", len(full), *out)
}
