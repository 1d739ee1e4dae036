package config

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// xmlFile is the `<mvnmin>` document of mvnmin.xml.
type xmlFile struct {
	XMLName        xml.Name     `xml:"mvnmin"`
	MavenCommand   string       `xml:"maven-command"`
	IgnoredModules []string     `xml:"ignored-modules>module"`
	BuildIfs       []xmlBuildIf `xml:"build-ifs>build-if"`
	Reactors       []xmlReactor `xml:"reactors>reactor"`
}

type xmlBuildIf struct {
	Match   []xmlMatch `xml:"match"`
	Modules []string   `xml:"module"`
}

type xmlMatch struct {
	Regex string `xml:"regex,attr"`
}

type xmlReactor struct {
	Name         string   `xml:"name,attr"`
	Pom          string   `xml:"pom,attr"`
	SkipIf       string   `xml:"skip-if,attr"`
	ExtraParams  string   `xml:"extra-params,attr"`
	Patterns     []string `xml:"pattern"`
	Primary      bool     `xml:"primary,attr"`
	SingleThread bool     `xml:"single-thread,attr"`
}

func decodeXML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	var doc xmlFile

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(NewDecodeError(path, err))
	}

	file := &File{
		MavenCommand:   strings.TrimSpace(doc.MavenCommand),
		IgnoredModules: trimAll(doc.IgnoredModules),
	}

	for _, buildIf := range doc.BuildIfs {
		block := &BuildIfBlock{Modules: trimAll(buildIf.Modules)}

		for _, match := range buildIf.Match {
			block.Match = append(block.Match, match.Regex)
		}

		file.BuildIfs = append(file.BuildIfs, block)
	}

	for _, r := range doc.Reactors {
		file.Reactors = append(file.Reactors, &ReactorBlock{
			Name:         r.Name,
			Pom:          r.Pom,
			ExtraParams:  r.ExtraParams,
			SkipIf:       r.SkipIf,
			Patterns:     trimAll(r.Patterns),
			Primary:      r.Primary,
			SingleThread: r.SingleThread,
		})
	}

	return file, nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))

	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			trimmed = append(trimmed, value)
		}
	}

	return trimmed
}
