package model

// The source export is a headerless 22-column grid. Column 1 carries the
// row-classification text (year banners, driver labels, day fragments);
// columns 2-22 are the payload mapped by position to the named fields below.

// FieldDef binds one payload column to its output field.
type FieldDef struct {
	Column   int    // 1-based column index in the normalized grid
	Name     string // output header, as printed on the timesheet
	Duration bool   // clock-string column rendered as an [h]:mm serial
}

// GridWidth is the nominal column count of the source export. Wider rows
// are truncated, shorter rows padded; the width itself is a soft default
// that the config may override.
const GridWidth = 22

// Fields is the fixed position->name table, in output order.
//
// The two running-average columns and the two remark columns are plain
// text: the averages are decimal figures the upstream system computes, not
// clock strings.
var Fields = []FieldDef{
	{2, "始業時刻", true},
	{3, "終業時刻", true},
	{4, "運転時間", true},
	{5, "重複運転時間", true},
	{6, "荷役時間", true},
	{7, "重複荷役時間", true},
	{8, "休憩時間", true},
	{9, "重複休憩時間", true},
	{10, "拘束時間小計", true},
	{11, "重複拘束時間小計", true},
	{12, "拘束時間合計", true},
	{13, "拘束時間累計", true},
	{14, "前運転平均", false},
	{15, "後運転平均", false},
	{16, "休息時間", true},
	{17, "実働時間", true},
	{18, "時間外時間", true},
	{19, "深夜時間", true},
	{20, "時間外深夜時間", true},
	{21, "摘要1", false},
	{22, "摘要2", false},
}

// FieldByName looks up a field definition by its output name.
func FieldByName(name string) (FieldDef, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldNames returns the output field names in table order.
func FieldNames() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}
