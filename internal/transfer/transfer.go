// Package transfer is the import/export bridge: ResumeData to and from the
// portable resume-data.json document.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-studio/resume/model"
)

// ExportFileName is the download name of the exported document.
const ExportFileName = "resume-data.json"

// ErrInvalidImport wraps any parse or shape failure; the caller keeps its
// prior state and surfaces the message.
var ErrInvalidImport = errors.New("invalid resume document")

var schemaLoader = gojsonschema.NewStringLoader(resumeSchema)

// Export serializes the resume as an indented portable JSON document.
func Export(data model.ResumeData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// Import parses and validates a portable document and returns the resume it
// holds, normalized. On any failure the returned error wraps
// ErrInvalidImport and no resume is produced.
func Import(raw []byte) (model.ResumeData, error) {
	if !json.Valid(raw) {
		return model.ResumeData{}, fmt.Errorf("%w: not valid JSON", ErrInvalidImport)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return model.ResumeData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return model.ResumeData{}, fmt.Errorf("%w: %s", ErrInvalidImport, strings.Join(msgs, "; "))
	}

	data := model.DefaultResumeData()
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.ResumeData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	data.Normalize()
	return data, nil
}
