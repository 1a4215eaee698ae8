package driver

import (
	"os"
	"path/filepath"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/render"
)

// emitArtifacts writes a finished result's rendered text, CSV, HTML tables,
// and exact-comparison summary under opts.OutputDir, when the caller opted
// in via WithEmitArtifacts. A NotFound result (no MetaTemplate) has nothing
// to render and is skipped.
func emitArtifacts(opts Options, result *Result, adapter flavor.Adapter) error {
	if !opts.EmitArtifacts || result.MetaTemplate == nil {
		return nil
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	dir = filepath.Join(dir, render.BundleName(result.Pattern))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	text, rows := render.MetaTemplateText(adapter, result.Pattern, result.MetaTemplate, result.Parameters)
	text += render.GroupSummary(result.Parameters)
	if err := os.WriteFile(filepath.Join(dir, "template.txt"), []byte(text), 0o644); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, "parameters.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	if err := render.ParameterCSV(csvFile, result.Parameters); err != nil {
		return err
	}

	metaHTML, err := os.Create(filepath.Join(dir, "meta_template.html"))
	if err != nil {
		return err
	}
	defer metaHTML.Close()
	if err := render.WriteMetaTemplateHTML(metaHTML, rows); err != nil {
		return err
	}

	groupsHTML, err := os.Create(filepath.Join(dir, "groups.html"))
	if err != nil {
		return err
	}
	defer groupsHTML.Close()
	if err := render.WriteGroupsHTML(groupsHTML, result.Parameters); err != nil {
		return err
	}

	exactSizes := render.AttachExactEquivalents(result.Parameters, result.ExactGroups)
	entry := render.BuildExactComparison(result.Pattern, string(result.Classification), exactSizes, result.Parameters.Groups)
	if entry == nil {
		return nil
	}
	data, err := render.MarshalExactComparison([]*render.ExactComparisonEntry{entry})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "ExactComp.json"), data, 0o644)
}
