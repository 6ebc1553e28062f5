// export_test.go exports private functions for white-box testing.
package workspace

var (
	FromLua = fromLua
	FromCty = fromCty
)
