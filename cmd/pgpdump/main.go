package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/pflag"
	"github.com/tomruk/pgpframe"
	"github.com/tomruk/pgpframe/internal/json"
)

type record struct {
	Offset int    `json:"offset"`
	Tag    int    `json:"tag"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

func main() {
	jsonOutput := pflag.BoolP("json", "j", false, "Emit one JSON object per packet")
	pflag.Parse()

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pgpdump [--json] <file>\nUse '-' to read from stdin.")
		os.Exit(2)
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reader := pgpframe.NewReader(data)
	encoder := json.NewEncoder(os.Stdout)

	for {
		offset := len(data) - reader.Len()
		packet, err := pgpframe.Next(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, pgpframe.ErrPartialLength) {
			fmt.Fprintf(os.Stderr, "Unsupported packet at offset %d: %v\n", offset, err)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Malformed input at offset %d: %v\n", offset, err)
			os.Exit(1)
		}

		if *jsonOutput {
			err = encoder.Encode(record{
				Offset: offset,
				Tag:    int(packet.Tag()),
				Name:   packet.Tag().String(),
				Length: len(packet.Contents()),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			continue
		}

		fmt.Printf("%s %s (tag %d), %d bytes\n",
			color.Cyan.Sprintf("%08x", offset),
			color.Green.Sprint(packet.Tag()),
			packet.Tag(),
			len(packet.Contents()))
	}
}
