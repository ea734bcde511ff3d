package meta

import (
	"fmt"
	"io"
	"os"

	"greg-hacke/keyence-meta/formats"
)

// ReadFileContent reads the host file and resolves its text encoding.
// This is the only stage of the pipeline whose failure aborts the run;
// everything past it degrades field by field.
func ReadFileContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist: %s", path)
		}
		return "", fmt.Errorf("cannot access file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}

	content, _, err := formats.DecodeText(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return content, nil
}

// ExtractFile reads a file and extracts its metadata record.
func ExtractFile(path string) (*Record, error) {
	content, err := ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	return Extract(content), nil
}
