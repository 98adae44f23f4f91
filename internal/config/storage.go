package config

import (
	"fmt"
	"strings"
)

type Storage struct {
	Driver StorageDriver `env:"STORAGE_DRIVER" envDefault:"MEMORY"`
}

// StorageDriver selects the item repository implementation.
type StorageDriver uint8

const (
	StorageDriverMemory StorageDriver = iota
	StorageDriverPostgres
)

// String returns the string representation of the storage driver.
func (d StorageDriver) String() string {
	return []string{"MEMORY", "POSTGRES"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It unmarshals the text to a storage driver.
func (d *StorageDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "MEMORY":
		*d = StorageDriverMemory
	case "POSTGRES":
		*d = StorageDriverPostgres
	default:
		return fmt.Errorf("unknown storage driver: %s", text)
	}
	return nil
}

func (d StorageDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
