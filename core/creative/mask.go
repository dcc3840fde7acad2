package creative

import (
	"reflect"

	"creative-sync/core/dv360"
)

// MutableFields lists, in mask order, the creative fields an update may change.
var MutableFields = []string{
	dv360.FieldDisplayName,
	dv360.FieldAssets,
	dv360.FieldEntityStatus,
}

// Mask compares two versions of a creative and names the mutable fields that differ.
func Mask(prev, next *dv360.Creative) []string {
	var mask []string
	for _, field := range MutableFields {
		if fieldChanged(field, prev, next) {
			mask = append(mask, field)
		}
	}
	return mask
}

func fieldChanged(field string, prev, next *dv360.Creative) bool {
	switch field {
	case dv360.FieldDisplayName:
		return prev.DisplayName != next.DisplayName
	case dv360.FieldAssets:
		return !reflect.DeepEqual(normalizeAssets(prev.Assets), normalizeAssets(next.Assets))
	case dv360.FieldEntityStatus:
		return prev.EntityStatus != next.EntityStatus
	default:
		return false
	}
}

func normalizeAssets(a []dv360.AssetAssociation) []dv360.AssetAssociation {
	if len(a) == 0 {
		return nil
	}
	return a
}
