package domain

import "sort"

// Equal reports whether two filter sets describe the same criteria.
// List fields are compared as sets: order is insignificant, so resubmitting
// the same criteria with accords clicked in a different order is still equal.
func (f FilterSet) Equal(other FilterSet) bool {
	if f.SearchQuery != other.SearchQuery ||
		f.Gender != other.Gender ||
		f.TradableOnly != other.TradableOnly {
		return false
	}

	return equalUnordered(f.Brands, other.Brands) &&
		equalUnordered(f.Accords, other.Accords) &&
		equalUnordered(f.TopNotes, other.TopNotes) &&
		equalUnordered(f.MiddleNotes, other.MiddleNotes) &&
		equalUnordered(f.BaseNotes, other.BaseNotes)
}

// IsZero reports whether no constraint is set at all.
func (f FilterSet) IsZero() bool {
	return f.Equal(FilterSet{})
}

// Clone returns a deep copy so callers can hold a snapshot while the
// session keeps mutating its own filter.
func (f FilterSet) Clone() FilterSet {
	clone := f
	clone.Brands = cloneList(f.Brands)
	clone.Accords = cloneList(f.Accords)
	clone.TopNotes = cloneList(f.TopNotes)
	clone.MiddleNotes = cloneList(f.MiddleNotes)
	clone.BaseNotes = cloneList(f.BaseNotes)
	return clone
}

// List returns the named list field (the live slice, not a copy).
func (f FilterSet) List(field ListField) []string {
	switch field {
	case FieldBrands:
		return f.Brands
	case FieldAccords:
		return f.Accords
	case FieldTopNotes:
		return f.TopNotes
	case FieldMiddleNotes:
		return f.MiddleNotes
	case FieldBaseNotes:
		return f.BaseNotes
	default:
		return nil
	}
}

func (f *FilterSet) setList(field ListField, values []string) {
	switch field {
	case FieldBrands:
		f.Brands = values
	case FieldAccords:
		f.Accords = values
	case FieldTopNotes:
		f.TopNotes = values
	case FieldMiddleNotes:
		f.MiddleNotes = values
	case FieldBaseNotes:
		f.BaseNotes = values
	}
}

// equalUnordered compares two string slices as sets, treating nil and empty
// as equal. Inputs are not modified.
func equalUnordered(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	sortedA := cloneList(a)
	sortedB := cloneList(b)
	sort.Strings(sortedA)
	sort.Strings(sortedB)

	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}
	return true
}

func cloneList(values []string) []string {
	if values == nil {
		return nil
	}
	clone := make([]string, len(values))
	copy(clone, values)
	return clone
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func removeValue(values []string, value string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			result = append(result, v)
		}
	}
	return result
}
