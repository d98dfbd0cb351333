package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Serialize writes the grid as currently displayed to a timestamped JSON
// file in the export directory and returns its path
func (m *TuiModel) Serialize() (string, error) {
	name := fmt.Sprintf("%s-%s.json", m.TableName, time.Now().Format("20060102-150405"))
	fileName := filepath.Join(m.ExportDir, name)

	f, err := os.Create(fileName)
	if err != nil {
		return "", err
	}

	if err := m.Grid.WriteJSON(f); err != nil {
		f.Close()
		return "", err
	}

	return fileName, f.Close()
}
