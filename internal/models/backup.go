package models

// StorageSettings tunes persistence. BackupRetentionDays is stored and
// round-tripped but nothing evicts backups by age.
type StorageSettings struct {
	AutoSaveIntervalMs  int `json:"autoSaveInterval"`
	MaxBackups          int `json:"maxBackups"`
	BackupRetentionDays int `json:"backupRetentionDays"`
}

func DefaultStorageSettings() StorageSettings {
	return StorageSettings{
		AutoSaveIntervalMs:  30000,
		MaxBackups:          10,
		BackupRetentionDays: 30,
	}
}

// BackupSnapshot is a full point-in-time copy of the list.
type BackupSnapshot struct {
	Articles  []Article       `json:"articles"`
	Settings  StorageSettings `json:"settings"`
	Timestamp string          `json:"timestamp"`
	Version   string          `json:"version"`
}
