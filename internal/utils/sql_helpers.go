package utils

import (
	"database/sql"
)

// NullStringToString convertit sql.NullString en string
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullFloat64ToPointer convertit sql.NullFloat64 en *float64
func NullFloat64ToPointer(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		return &nf.Float64
	}
	return nil
}

// NullFloat64ToFloat64 convertit sql.NullFloat64 en float64
func NullFloat64ToFloat64(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}

// NullBoolToBool convertit sql.NullBool en bool
func NullBoolToBool(nb sql.NullBool) bool {
	if nb.Valid {
		return nb.Bool
	}
	return false
}
