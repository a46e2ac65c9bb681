package config

import "strings"

// MergeSearch applies layers in order; a later non-nil value wins.
func MergeSearch(base SearchSettings, layers ...SearchConfig) SearchSettings {
	out := base
	for _, layer := range layers {
		out.IgnoreCase = ResolveBool(out.IgnoreCase, layer.IgnoreCase)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.TruncAll = ResolveInt(out.TruncAll, layer.TruncAll)
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Filename = ResolveAndTrim(out.Filename, layer.Filename)
		out.LineNumber = ResolveBool(out.LineNumber, layer.LineNumber)
		out.Fields = ResolveAndTrim(out.Fields, layer.Fields)
		out.MatchColor = ResolveAndTrim(out.MatchColor, layer.MatchColor)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "plain"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if strings.TrimSpace(out.Filename) == "" {
		out.Filename = "auto"
	}
	return out
}
