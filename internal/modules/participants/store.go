package participants

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consumerlab/markettrends/internal/domain"
)

// Store handles file exchange for participants and analysis reports.
// Participants are stored as a JSON list of tagged records so the typed
// variants can be rebuilt; reports are exported as verbatim JSON.
//
// Batch operations are partial-failure tolerant: a bad record is skipped
// and counted, and only file-level problems (missing file, undecodable
// top-level structure) fail an operation outright. Partial-success
// operations return a human-readable message stating how many records
// succeeded and how many were skipped.
type Store struct {
	dataDir string
	log     zerolog.Logger
}

// NewStore creates a store rooted at dataDir. The directory is expected to
// exist (config.Load creates it).
func NewStore(dataDir string, log zerolog.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		log:     log.With().Str("component", "participants").Logger(),
	}
}

func (s *Store) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

// SaveJSON writes the participants to a JSON file of tagged records.
func (s *Store) SaveJSON(participants []Participant, filename string) (string, error) {
	path := s.path(filename)

	payload := make([]map[string]any, len(participants))
	for i, p := range participants {
		payload[i] = p.Record()
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprintf("Save failed: %v", err), fmt.Errorf("marshal participants: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Sprintf("Save failed: %v", err), fmt.Errorf("write %s: %w", path, err)
	}

	s.log.Info().Int("participants", len(payload)).Str("path", path).Msg("Saved participants")
	return fmt.Sprintf("Saved %d participants to %s", len(payload), path), nil
}

// LoadJSON reads participants back from a saved JSON file. Unknown or
// malformed records are skipped and counted; a missing file is treated as
// an empty store rather than an error.
func (s *Store) LoadJSON(filename string) ([]Participant, string, error) {
	path := s.path(filename)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Sprintf("Load skipped: file not found at %s", path), nil
	}
	if err != nil {
		return nil, fmt.Sprintf("Load failed: %v", err), fmt.Errorf("read %s: %w", path, err)
	}

	participants, skipped, err := decodeRecordList(data)
	if err != nil {
		return nil, fmt.Sprintf("Load failed: %v", err), err
	}

	msg := fmt.Sprintf("Loaded %d participants from %s", len(participants), path)
	if skipped > 0 {
		msg += fmt.Sprintf(" with %d invalid record(s) skipped", skipped)
	}
	s.log.Info().Int("participants", len(participants)).Int("skipped", skipped).Str("path", path).Msg("Loaded participants")
	return participants, msg, nil
}

// ImportFromSource reads participants from an external file, dispatching on
// the extension (.json or .csv). File-level failures return an empty result
// with a descriptive message and a non-nil error; per-record failures only
// reduce the result and raise the skipped count.
func (s *Store) ImportFromSource(sourcePath string) ([]Participant, string, error) {
	if _, err := os.Stat(sourcePath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Sprintf("Import failed: file not found at %s", sourcePath),
			fmt.Errorf("stat %s: %w", sourcePath, err)
	}

	switch strings.ToLower(filepath.Ext(sourcePath)) {
	case ".json":
		return s.importJSON(sourcePath)
	case ".csv":
		return s.importCSV(sourcePath)
	default:
		ext := filepath.Ext(sourcePath)
		return nil, fmt.Sprintf("Import failed: unsupported file type %s", ext),
			domain.NewValidationError("source", "unsupported file type: "+ext)
	}
}

func (s *Store) importJSON(sourcePath string) ([]Participant, string, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Sprintf("Import failed: %v", err), fmt.Errorf("read %s: %w", sourcePath, err)
	}

	participants, skipped, err := decodeRecordList(data)
	if err != nil {
		return nil, fmt.Sprintf("Import failed: %v", err), err
	}

	msg := fmt.Sprintf("Imported %d participants from %s", len(participants), sourcePath)
	if skipped > 0 {
		msg += fmt.Sprintf(" with %d invalid record(s) skipped", skipped)
	}
	s.log.Info().Int("participants", len(participants)).Int("skipped", skipped).Str("path", sourcePath).Msg("Imported participants")
	return participants, msg, nil
}

// importCSV reads rows with the header
// type,name,age,email,school,occupation,retirement_status. Columns that are
// irrelevant for a row's type may be blank.
func (s *Store) importCSV(sourcePath string) ([]Participant, string, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Sprintf("Import failed: %v", err), fmt.Errorf("open %s: %w", sourcePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, "Import failed: CSV missing header row", fmt.Errorf("read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var participants []Participant
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Rows with the wrong field count are individually bad, not a
			// file-level decode failure.
			if errors.Is(err, csv.ErrFieldCount) {
				skipped++
				continue
			}
			return nil, fmt.Sprintf("Import failed: %v", err), fmt.Errorf("read CSV row: %w", err)
		}

		p, err := ParseRecord(csvRowToRecord(columns, row))
		if err != nil {
			skipped++
			continue
		}
		participants = append(participants, p)
	}

	msg := fmt.Sprintf("Imported %d participants from %s", len(participants), sourcePath)
	if skipped > 0 {
		msg += fmt.Sprintf(" with %d invalid row(s) skipped", skipped)
	}
	s.log.Info().Int("participants", len(participants)).Int("skipped", skipped).Str("path", sourcePath).Msg("Imported participants")
	return participants, msg, nil
}

// csvRowToRecord converts a CSV row to the generic record shape consumed by
// ParseRecord. The retirement_status cell is passed through untrimmed: only
// exact allow-list values count as true.
func csvRowToRecord(columns map[string]int, row []string) map[string]any {
	cell := func(name string) (string, bool) {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return "", false
		}
		return row[idx], true
	}

	rec := make(map[string]any, len(columns))
	for _, name := range []string{"type", "name", "age", "email", "school", "occupation"} {
		if v, ok := cell(name); ok {
			rec[name] = strings.TrimSpace(v)
		}
	}
	if v, ok := cell("retirement_status"); ok {
		rec["retirement_status"] = v
	}
	return rec
}

// ExportReport writes an arbitrary JSON-serializable report verbatim.
func (s *Store) ExportReport(reportData any, filename string) (string, error) {
	path := s.path(filename)
	exportID := uuid.New().String()

	data, err := json.MarshalIndent(reportData, "", "  ")
	if err != nil {
		return fmt.Sprintf("Export failed: %v", err), fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Sprintf("Export failed: %v", err), fmt.Errorf("write %s: %w", path, err)
	}

	s.log.Info().Str("export_id", exportID).Str("path", path).Msg("Exported report")
	return fmt.Sprintf("Exported report to %s", path), nil
}

// decodeRecordList decodes a JSON array of participant records, skipping
// entries that are not objects or fail ParseRecord. A top-level structure
// that is not a list is a decode failure.
func decodeRecordList(data []byte) ([]Participant, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("corrupted JSON: %w", err)
	}

	var participants []Participant
	skipped := 0
	for _, item := range raw {
		var rec map[string]any
		if err := json.Unmarshal(item, &rec); err != nil {
			skipped++
			continue
		}
		p, err := ParseRecord(rec)
		if err != nil {
			skipped++
			continue
		}
		participants = append(participants, p)
	}
	return participants, skipped, nil
}
