// Package rules classifies texture paths for conversion.
//
// A rule set holds four ordered lists of regular expressions, each matched
// against the start of a texture path expressed relative to the asset root
// (for example `Squad/Parts/engine_NRM.png`). A pattern is implicitly
// anchored at position 0 and does not need to match the whole path.
//
// # Categories
//
//   - `exclude` - the texture is left untouched and never converted
//   - `model` - the texture belongs to a 3D model (mipmaps, normal map check)
//   - `not_model` - carves exceptions out of `model`; always wins over it
//   - `keep_readable` - pixel data must stay resident after encoding
//
// # Precedence
//
// Exclusion wins over everything. A `not_model` match removes a path from
// the model set. Only model textures are checked against the normal map
// file name convention (`NRM`, `_nm`, `_normal` before the extension).
// `keep_readable` is independent of the model flags.
//
// # Configuration
//
// Rule sets are loaded from TOML or YAML, one pattern per list entry:
//
//	normal_map_suffixes = ["NRM", "_nm", "_normal"]
//	exclude = ["BoulderCo/"]
//	model = [".*/Parts/", "ASET/", "ASET_Props/"]
//	not_model = [".*/Flags/.*"]
//	keep_readable = ["TextureReplacer/EnvMap/"]
//
//	[[scale]]
//	pattern = "Squad/Parts/"
//	model = 0.5
//	normal_map = 0.5
//
// Compile lints every definition before use; see Lint.
package rules
