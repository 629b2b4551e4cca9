// Test Type: Unit Test
// Description: Tests for encoder flag derivation from classifications

package encoder_test

import (
	"testing"

	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	const path = "/ksp/GameData/Mod/a.png"

	tests := []struct {
		name   string
		class  rules.Classification
		scales encoder.Scales
		want   []string
	}{
		{
			name:   "plain_texture",
			class:  rules.Classification{},
			scales: encoder.DefaultScales,
			want:   []string{"-vc", path},
		},
		{
			name:   "plain_readable",
			class:  rules.Classification{KeepReadable: true},
			scales: encoder.DefaultScales,
			want:   []string{"-vcr", path},
		},
		{
			name:   "model_texture",
			class:  rules.Classification{IsModel: true},
			scales: encoder.DefaultScales,
			want:   []string{"-vcmNs", "1", path},
		},
		{
			name:   "model_readable",
			class:  rules.Classification{IsModel: true, KeepReadable: true},
			scales: encoder.DefaultScales,
			want:   []string{"-vcmNrs", "1", path},
		},
		{
			name:   "normal_map_uses_normal_scale",
			class:  rules.Classification{IsModel: true, IsNormalMap: true},
			scales: encoder.Scales{Model: 0.5, NormalMap: 0.25},
			want:   []string{"-vcmns", "0.25", path},
		},
		{
			name:   "model_uses_model_scale",
			class:  rules.Classification{IsModel: true},
			scales: encoder.Scales{Model: 0.5, NormalMap: 0.25},
			want:   []string{"-vcmNs", "0.5", path},
		},
		{
			name:   "rule_override_beats_global_scale",
			class:  rules.Classification{IsModel: true, ModelScale: 0.125},
			scales: encoder.Scales{Model: 0.5, NormalMap: 0.25},
			want:   []string{"-vcmNs", "0.125", path},
		},
		{
			name:   "normal_override_beats_global_scale",
			class:  rules.Classification{IsModel: true, IsNormalMap: true, NormalMapScale: 2},
			scales: encoder.Scales{Model: 0.5, NormalMap: 0.25},
			want:   []string{"-vcmns", "2", path},
		},
		{
			name:   "zero_scales_fall_back_to_one",
			class:  rules.Classification{IsModel: true},
			scales: encoder.Scales{},
			want:   []string{"-vcmNs", "1", path},
		},
		{
			name:   "normal_flag_ignored_without_model",
			class:  rules.Classification{IsNormalMap: true},
			scales: encoder.DefaultScales,
			want:   []string{"-vc", path},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := encoder.Build(tt.class, path, tt.scales)
			assert.Equal(t, tt.want, inv.Args())
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	class := rules.Classification{IsModel: true, IsNormalMap: true, KeepReadable: true}
	first := encoder.Build(class, "a.png", encoder.DefaultScales)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, encoder.Build(class, "a.png", encoder.DefaultScales))
	}
}

func TestInvocation_PathWithSpaces(t *testing.T) {
	inv := encoder.Build(rules.Classification{}, "/x/GameData/Space Factory Ind/a b.png", encoder.DefaultScales)
	args := inv.Args()
	assert.Len(t, args, 2)
	assert.Equal(t, "/x/GameData/Space Factory Ind/a b.png", args[1])
	assert.Equal(t, "-vc /x/GameData/Space Factory Ind/a b.png", inv.String())
}
