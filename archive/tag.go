package archive

// analogVarType is the dbo.Archive VarType value for floating-point tags.
const analogVarType = 11

// TagDescriptor is one dbo.Archive row. ValueID is the stable key used
// everywhere; Name is only ever used for output file naming, never for
// decode decisions.
type TagDescriptor struct {
	ValueID         int32
	Name            string
	Precision       float64
	CompressionMode int16
	VarType         int16
}

// IsDigital reports whether the tag holds boolean states rather than
// analog values. The schema-level VarType decides: any known type other
// than the analog one is digital. A zero (NULL) VarType defaults to
// analog; digital tags are normally reached through the "_DC" discovery
// pattern, which the historian only applies to typed binary tags.
func (t TagDescriptor) IsDigital() bool {
	return t.VarType != 0 && t.VarType != analogVarType
}
