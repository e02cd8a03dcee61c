package cmd

const rootLongDescription = `Slugline makes sure every Python file starts with a slug line, a comment
that names the file itself:

  #: example.py

A missing slug line is inserted as the new first line. A slug line naming
another file is corrected. Files that already carry the right one are left
untouched.

Paths default to the current directory. Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./src ./tests  scan multiple directories`

const listLongDescription = `List every matching file with the change slugline would make to it,
without writing anything. Exits with status 1 when any file needs a change.`
