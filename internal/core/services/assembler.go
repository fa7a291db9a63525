package services

import (
	"slices"

	"github.com/google/uuid"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// Detection pairs a message with the code found in it.
type Detection struct {
	Message domain.CandidateMessage
	Code    string
}

// Assemble builds the scan result: one record per unique code, keeping
// the most recent occurrence, ordered by timestamp descending.
func Assemble(detections []Detection) []domain.OTPRecord {
	index := make(map[string]int, len(detections))
	records := make([]domain.OTPRecord, 0, len(detections))

	for _, d := range detections {
		rec := domain.OTPRecord{
			ID:          uuid.NewString(),
			Code:        d.Code,
			Sender:      d.Message.Sender,
			Timestamp:   d.Message.Timestamp,
			FullMessage: d.Message.Text,
		}

		if i, seen := index[d.Code]; seen {
			if rec.Timestamp.After(records[i].Timestamp) {
				records[i] = rec
			}
			continue
		}
		index[d.Code] = len(records)
		records = append(records, rec)
	}

	slices.SortStableFunc(records, func(a, b domain.OTPRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return records
}
