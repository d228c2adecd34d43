package vault

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/illarion/pocketvault/internal/crypto"
	"github.com/illarion/pocketvault/internal/model"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the changes between the vault on disk and the in-memory
// credentials as a unified diff. An empty string means no changes. All
// decrypted material is zeroed before returning; the rendered diff itself
// necessarily contains secrets and is the caller's to handle.
func (s *Service) Diff() (string, error) {
	if !s.session.Unlocked() {
		return "", ErrLocked
	}

	stored, err := s.decryptFile(s.session.Path(), s.session.Passphrase())
	if err != nil {
		return "", err
	}

	current, err := model.Serialize(s.entries, s.categories)
	if err != nil {
		crypto.ClearBytes(stored)
		return "", err
	}

	diff, err := unifiedDiff(s.session.Path(), stored, current)
	crypto.ClearBytes(stored)
	crypto.ClearBytes(current)
	return diff, err
}

// unifiedDiff formats a line-mode diff between two vault payloads. The
// payloads are pretty-printed first so the diff follows entry boundaries
// instead of one long JSON line.
func unifiedDiff(path string, storedData, currentData []byte) (string, error) {
	storedStr, err := indent(storedData)
	if err != nil {
		return "", err
	}
	currentStr, err := indent(currentData)
	if err != nil {
		return "", err
	}
	if storedStr == currentStr {
		return "", nil
	}

	dmp := diffmatchpatch.New()

	// Line-mode diff for better output
	a, b, lineArray := dmp.DiffLinesToChars(storedStr, currentStr)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	patches := dmp.PatchMake(storedStr, diffs)
	if len(patches) == 0 {
		return "", nil
	}

	var result bytes.Buffer
	result.WriteString(fmt.Sprintf("--- a/%s\n", path))
	result.WriteString(fmt.Sprintf("+++ b/%s\n", path))
	result.WriteString(dmp.PatchToText(patches))
	return result.String(), nil
}

func indent(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format vault payload: %w", err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
