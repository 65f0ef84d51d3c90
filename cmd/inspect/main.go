package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	log "github.com/sirupsen/logrus"
)

var slugFilename = regexp.MustCompile(`^[0-9a-f]{20}\.md$`)

// articleMeta mirrors the front matter written by zenn-importer
type articleMeta struct {
	Title     string   `yaml:"title"`
	Emoji     string   `yaml:"emoji"`
	Type      string   `yaml:"type"`
	Topics    []string `yaml:"topics"`
	Published bool     `yaml:"published"`
}

// Problem describes a file that failed verification
type Problem struct {
	Path   string
	Reason string
}

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: inspect <verify|topics> <articles-directory>")
	}

	command := os.Args[1]
	articlesDir := os.Args[2]

	switch command {
	case "verify":
		problems, checked, err := verifyArticles(articlesDir)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range problems {
			fmt.Printf("  BAD: %s: %s\n", p.Path, p.Reason)
		}
		fmt.Printf("\nChecked %d files, %d problems\n", checked, len(problems))
		if len(problems) > 0 {
			os.Exit(1)
		}
	case "topics":
		counts, err := countTopics(articlesDir)
		if err != nil {
			log.Fatal(err)
		}
		for _, tc := range counts {
			fmt.Printf("%6d  %s\n", tc.Count, tc.Topic)
		}
	default:
		log.Fatalf("Unknown command %q", command)
	}
}

// readArticle parses the front matter of a generated article
func readArticle(path string) (*articleMeta, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var meta articleMeta
	body, err := frontmatter.MustParse(bytes.NewReader(content), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return &meta, body, nil
}

func articleFiles(articlesDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(articlesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func verifyArticles(articlesDir string) ([]Problem, int, error) {
	files, err := articleFiles(articlesDir)
	if err != nil {
		return nil, 0, err
	}

	var problems []Problem
	for _, path := range files {
		if !slugFilename.MatchString(filepath.Base(path)) {
			problems = append(problems, Problem{Path: path, Reason: "filename is not a 20 character hex slug"})
		}

		meta, _, err := readArticle(path)
		if err != nil {
			problems = append(problems, Problem{Path: path, Reason: err.Error()})
			continue
		}
		if meta.Title == "" {
			problems = append(problems, Problem{Path: path, Reason: "empty title"})
		}
		if meta.Type != "tech" && meta.Type != "idea" {
			problems = append(problems, Problem{Path: path, Reason: fmt.Sprintf("unknown type %q", meta.Type)})
		}
		log.WithField("file", path).Debug("verified")
	}
	return problems, len(files), nil
}

// TopicCount is the number of articles tagged with a topic
type TopicCount struct {
	Topic string
	Count int
}

func countTopics(articlesDir string) ([]TopicCount, error) {
	files, err := articleFiles(articlesDir)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, path := range files {
		meta, _, err := readArticle(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		for _, topic := range meta.Topics {
			if topic == "" {
				continue
			}
			counts[topic]++
		}
	}

	out := make([]TopicCount, 0, len(counts))
	for topic, n := range counts {
		out = append(out, TopicCount{Topic: topic, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})
	return out, nil
}
