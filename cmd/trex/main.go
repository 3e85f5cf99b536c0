package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback keeps non-ASCII names legible on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
