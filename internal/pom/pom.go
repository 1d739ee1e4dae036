// Package pom reads module identifiers from Maven project descriptors.
package pom

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// FileName is the Maven project descriptor name.
const FileName = "pom.xml"

// Project holds the parts of a pom.xml needed to identify a module.
type Project struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Parent     *Parent  `xml:"parent"`
}

// Parent is the `<parent>` reference of a pom.xml.
type Parent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// ID returns `groupId:artifactId`, taking the group from the parent when the project inherits it.
func (project *Project) ID() string {
	groupID := strings.TrimSpace(project.GroupID)
	if groupID == "" && project.Parent != nil {
		groupID = strings.TrimSpace(project.Parent.GroupID)
	}

	return groupID + ":" + strings.TrimSpace(project.ArtifactID)
}

// Parse decodes a project descriptor.
func Parse(data []byte) (*Project, error) {
	project := new(Project)

	if err := xml.Unmarshal(data, project); err != nil {
		return nil, errors.New(err)
	}

	if strings.TrimSpace(project.ArtifactID) == "" {
		return nil, errors.New(ErrMissingArtifactID)
	}

	return project, nil
}

// ParseFile reads and decodes the descriptor at path.
func ParseFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(ParseError{Path: path, Err: err})
	}

	project, err := Parse(data)
	if err != nil {
		return nil, errors.New(ParseError{Path: path, Err: err})
	}

	return project, nil
}
