package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mvolt/ascend/internal/audio"
	"github.com/mvolt/ascend/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Sound is best effort: a machine without an audio device still plays
	sounds := audio.NewManager()
	if err := sounds.Initialize(); err != nil {
		sounds = nil
	}
	defer sounds.Close()

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{}
	if sounds != nil {
		opts.Sounds = sounds
	}

	if err := loop.Run(context.Background(), reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
