package storage

import (
	"encoding/json"
	"errors"

	"panmixia/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRun(r model.RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeFitnessHistory(history []model.GenerationStats) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeFitnessHistory(data []byte) ([]model.GenerationStats, error) {
	var history []model.GenerationStats
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeGenotypeRecord(r model.GenotypeRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeGenotypeRecord(data []byte) (model.GenotypeRecord, error) {
	var record model.GenotypeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.GenotypeRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.GenotypeRecord{}, err
	}
	return record, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
