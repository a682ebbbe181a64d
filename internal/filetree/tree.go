// Package filetree rebuilds a folder hierarchy from the flat key list of
// an object listing. Folders are implied by "/" separators; nothing about
// them is stored anywhere.
package filetree

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/models"
)

const separator = "/"

// Node is either a *Folder or a *File.
type Node interface {
	NodeName() string
	node()
}

type Folder struct {
	Name     string
	Children []Node
}

type File struct {
	Name   string
	Object models.ObjectRecord
}

func (f *Folder) NodeName() string { return f.Name }
func (f *File) NodeName() string   { return f.Name }

func (*Folder) node() {}
func (*File) node()   {}

// Conflict describes a record that could not be placed because a segment
// of its key is already taken by a node of the other kind.
type Conflict struct {
	Key     string
	Segment string
}

// Build returns the forest for records. See BuildWithConflicts.
func Build(records []models.ObjectRecord) []Node {
	nodes, _ := BuildWithConflicts(records)
	return nodes
}

// BuildWithConflicts splits every key on "/" and places a File for the last
// segment under Folders for the others. Siblings keep first-seen order and
// folder names are reused. A key ending in "/" only creates folders.
//
// When a segment names an existing File but the key needs a Folder there
// (or the other way round), the first-seen node wins and the record is
// returned as a Conflict instead of being placed.
func BuildWithConflicts(records []models.ObjectRecord) ([]Node, []Conflict) {
	root := &Folder{}
	var conflicts []Conflict

	for _, rec := range records {
		if rec.Key == "" {
			continue
		}

		parts := strings.Split(rec.Key, separator)
		folderOnly := strings.HasSuffix(rec.Key, separator)
		if folderOnly {
			parts = parts[:len(parts)-1]
		}

		level := root
		for i, part := range parts {
			last := i == len(parts)-1
			existing := find(level.Children, part)

			if last && !folderOnly {
				if existing != nil {
					conflicts = append(conflicts, Conflict{Key: rec.Key, Segment: part})
					break
				}
				level.Children = append(level.Children, &File{Name: part, Object: rec})
				break
			}

			switch n := existing.(type) {
			case *Folder:
				level = n
				continue
			case *File:
				conflicts = append(conflicts, Conflict{Key: rec.Key, Segment: part})
			case nil:
				f := &Folder{Name: part}
				level.Children = append(level.Children, f)
				level = f
				continue
			}
			break
		}
	}

	return root.Children, conflicts
}

func find(nodes []Node, name string) Node {
	for _, n := range nodes {
		if n.NodeName() == name {
			return n
		}
	}
	return nil
}

// Walk visits nodes depth-first in order, passing each node's joined path.
// Returning false from fn skips a folder's children.
func Walk(nodes []Node, fn func(path string, n Node) bool) {
	walk(nodes, "", fn)
}

func walk(nodes []Node, prefix string, fn func(string, Node) bool) {
	for _, n := range nodes {
		path := prefix + n.NodeName()
		descend := fn(path, n)
		if f, ok := n.(*Folder); ok && descend {
			walk(f.Children, path+separator, fn)
		}
	}
}

// Paths returns the key of every File in walk order.
func Paths(nodes []Node) []string {
	var out []string
	Walk(nodes, func(path string, n Node) bool {
		if _, ok := n.(*File); ok {
			out = append(out, path)
		}
		return true
	})
	return out
}

// Count returns the number of folders and files in the forest.
func Count(nodes []Node) (folders, files int) {
	Walk(nodes, func(_ string, n Node) bool {
		switch n.(type) {
		case *Folder:
			folders++
		case *File:
			files++
		}
		return true
	})
	return folders, files
}

type folderJSON struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Children []Node `json:"children"`
}

type fileJSON struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	DownloadURL  string    `json:"downloadUrl,omitempty"`
}

func (f *Folder) MarshalJSON() ([]byte, error) {
	children := f.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(folderJSON{Name: f.Name, Type: "folder", Children: children})
}

func (f *File) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileJSON{
		Name:         f.Name,
		Type:         "file",
		Key:          f.Object.Key,
		Size:         f.Object.Size,
		LastModified: f.Object.LastModified,
		DownloadURL:  f.Object.DownloadURL,
	})
}
