// Package undo turns a run's move log into a standalone POSIX sh script
// that moves the relocated files back where they came from.
package undo

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/afero"
)

// ErrNothingToUndo is returned when the move log holds no completed moves.
var ErrNothingToUndo = errors.New("nothing to undo")

// The generated script embeds the destination paths and the source root as
// literal data, so it keeps working after this process exits. Files are
// restored under their destination basename; a file renamed by collision
// handling on the way out comes back under that adjusted name.
var scriptTemplate = template.Must(template.New("undo").Funcs(template.FuncMap{
	"q": shQuote,
}).Parse(`#!/bin/sh
# Restores {{.Count}} file(s) moved by organize on {{.Generated}}.
# Self-contained; run with sh. Safe to re-run: files already restored
# are reported as missing.
set -u

source_dir={{q .SourceDir}}
restored=0
missing=0
failed=0

# restore moves one file back into source_dir. Name collisions get a
# numeric suffix before the extension, the same way the forward run
# resolved them.
restore() {
    if [ ! -e "$1" ]; then
        echo "missing: $1" >&2
        missing=$((missing + 1))
        return
    fi
    b=$(basename "$1")
    stem=$b
    ext=
    case $b in
    .*)
        rest=${b#.}
        case $rest in
        *.*) stem=.${rest%%.*} ext=.${rest#*.} ;;
        esac
        ;;
    *.*)
        stem=${b%%.*} ext=.${b#*.}
        ;;
    esac
    dest="$source_dir/$b"
    n=1
    while [ -e "$dest" ]; do
        dest="$source_dir/${stem}_${n}${ext}"
        n=$((n + 1))
    done
    if mv "$1" "$dest"; then
        restored=$((restored + 1))
    else
        echo "failed: $1" >&2
        failed=$((failed + 1))
    fi
}

{{range .Destinations}}restore {{q .}}
{{end}}
echo "restored $restored file(s) to $source_dir ($missing missing, $failed failed)"
`))

type scriptData struct {
	Generated    string
	Count        int
	SourceDir    string
	Destinations []string
}

// Script renders a reversal script that moves each destination path, in
// logged order, back into sourceDir. Returns ErrNothingToUndo when
// destinations is empty.
func Script(destinations []string, sourceDir string) ([]byte, error) {
	if len(destinations) == 0 {
		return nil, ErrNothingToUndo
	}
	var buf bytes.Buffer
	err := scriptTemplate.Execute(&buf, scriptData{
		Generated:    time.Now().UTC().Format(time.RFC3339),
		Count:        len(destinations),
		SourceDir:    sourceDir,
		Destinations: destinations,
	})
	if err != nil {
		return nil, fmt.Errorf("render undo script: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the reversal script and writes it to path, marked
// executable.
func Write(fsys afero.Fs, path string, destinations []string, sourceDir string) error {
	script, err := Script(destinations, sourceDir)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, script, 0o755); err != nil {
		return fmt.Errorf("write undo script %s: %w", path, err)
	}
	slog.Info("wrote undo script", "path", path, "files", len(destinations))
	return nil
}

// shQuote wraps s in single quotes for sh, closing and reopening the
// quoting around embedded quote characters.
func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
