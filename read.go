package pathkit

import (
	"bufio"
	"encoding/json"
	"iter"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathkit/errors"
)

// ReadBytes reads the file's whole content.
func (p Path) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(p.raw)
	if err != nil {
		return nil, osError(err, "read", p)
	}
	return data, nil
}

// ReadText reads the file's whole content as a string.
func (p Path) ReadText() (string, error) {
	data, err := p.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Lines lazily yields the file's lines without their trailing newline.
//
// The file handle is opened on first use and released on every exit path,
// so breaking out of the loop early never leaks it. Lines longer than one
// megabyte yield an error.
func (p Path) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(p.raw)
		if err != nil {
			yield("", osError(err, "open", p))
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", osError(err, "read", p))
		}
	}
}

const maxLineSize = 1 << 20

// ReadJSON reads the file and unmarshals its JSON content into v.
func (p Path) ReadJSON(v any) error {
	data, err := p.ReadBytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, errors.CodeUnknown, "unmarshal json from %s", p)
	}
	return nil
}

// ReadYAML reads the file and unmarshals its YAML content into v.
func (p Path) ReadYAML(v any) error {
	data, err := p.ReadBytes()
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, errors.CodeUnknown, "unmarshal yaml from %s", p)
	}
	return nil
}
