package rosetta

import (
	"testing/fstest"
)

func newMapDirectory(files map[string]string) *FSDirectory {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys["packs/"+name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewFSDirectory(fsys, "packs")
}

func fileEntries(names ...string) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, IsFile: true})
	}
	return entries
}

const greetingPack = `
language = "en"
territory = "xx"
modifier = "blank"

[messages]
greeting = "Hi ($name)! (ansi bold)Welcome(ansi italic) back"
farewell = "Bye"

[messages.errors]
missing = "File ($path) is missing"
count = 3
`
