package exporter

import (
	"path/filepath"
	"strconv"

	"irdacli/internal/handbook"
	"irdacli/internal/pipeline"
	"irdacli/internal/standardize"
)

// Artifact file names. The checks bundle lives in a subdirectory next to
// the two main tables.
const (
	FactsFile          = "facts_table.csv"
	StateBreakdownFile = "state_breakdown.csv"
	checksDir          = "checks"
	CrosswalkFile      = "name_xwalk.csv"
	QALogFile          = "qa_logs.csv"
	DataDictionaryFile = "data_dictionary.csv"
	AUMDetailFile      = "table_21_detail.csv"
	SolvencyDetailFile = "table_23_detail.csv"
)

// WriteAll writes every artifact of a run. The first write failure aborts;
// artifact writing is the only I/O after extraction and a failure here is
// fatal to the run.
func (w *CSVWriter) WriteAll(res *pipeline.Result) error {
	if err := w.WriteFacts(res.Facts); err != nil {
		return err
	}
	if err := w.WriteStateBreakdown(res.StateBreakdown); err != nil {
		return err
	}
	if err := w.WriteCrosswalk(res.Crosswalk); err != nil {
		return err
	}
	if err := w.WriteQALog(res.QA); err != nil {
		return err
	}
	if err := w.WriteAUMDetails(res.AUMDetails); err != nil {
		return err
	}
	if err := w.WriteSolvencyDetails(res.SolvencyDetails); err != nil {
		return err
	}
	return w.WriteDataDictionary()
}

// WriteFacts writes the main facts relation. Blank dimensions are emitted
// as empty strings, never as a null marker.
func (w *CSVWriter) WriteFacts(facts []handbook.Fact) error {
	headers := []string{"Insurer", "Year", "L1", "L2", "L3", "Individual_Group", "Distribution_Channel", "KPI", "Value", "Source"}
	records := make([][]string, 0, len(facts))
	for _, f := range facts {
		records = append(records, []string{
			f.Insurer,
			strconv.Itoa(f.Year),
			f.L1,
			f.L2,
			f.L3,
			f.IndividualGroup,
			f.DistributionChannel,
			f.KPI,
			formatValue(f.Value),
			f.Source,
		})
	}
	return w.WriteTable(FactsFile, headers, records)
}

// WriteStateBreakdown writes the union of per-table state detail records.
func (w *CSVWriter) WriteStateBreakdown(details []handbook.StateDetail) error {
	headers := []string{"State", "Insurer", "Year", "Individual_Group", "KPI", "Value", "Source"}
	records := make([][]string, 0, len(details))
	for _, d := range details {
		records = append(records, []string{
			d.State,
			d.Insurer,
			strconv.Itoa(d.Year),
			d.IndividualGroup,
			d.KPI,
			formatValue(d.Value),
			d.Source,
		})
	}
	return w.WriteTable(StateBreakdownFile, headers, records)
}

// WriteCrosswalk writes one row per distinct raw insurer name encountered.
func (w *CSVWriter) WriteCrosswalk(xwalk *standardize.Crosswalk) error {
	headers := []string{"Original_Name", "Standardized_Name"}
	pairs := xwalk.Pairs()
	records := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, []string{p.Original, p.Standardized})
	}
	return w.WriteTable(filepath.Join(checksDir, CrosswalkFile), headers, records)
}

// WriteQALog writes the QA log in append order.
func (w *CSVWriter) WriteQALog(log *pipeline.QALog) error {
	headers := []string{"Check", "Status", "Details"}
	entries := log.Entries()
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{e.Check, string(e.Status), e.Details})
	}
	return w.WriteTable(filepath.Join(checksDir, QALogFile), headers, records)
}

// WriteAUMDetails writes the per-fund AUM detail relation.
func (w *CSVWriter) WriteAUMDetails(details []handbook.AUMDetail) error {
	headers := []string{"Insurer", "Year", "Fund_Type", "AUM", "Source"}
	records := make([][]string, 0, len(details))
	for _, d := range details {
		records = append(records, []string{
			d.Insurer,
			strconv.Itoa(d.Year),
			d.FundType,
			formatValue(d.AUM),
			d.Source,
		})
	}
	return w.WriteTable(filepath.Join(checksDir, AUMDetailFile), headers, records)
}

// WriteSolvencyDetails writes the per-period solvency detail relation.
func (w *CSVWriter) WriteSolvencyDetails(details []handbook.SolvencyDetail) error {
	headers := []string{"Insurer", "Period", "Year", "Solvency_Ratio", "Source"}
	records := make([][]string, 0, len(details))
	for _, d := range details {
		records = append(records, []string{
			d.Insurer,
			d.Period,
			strconv.Itoa(d.Year),
			formatValue(d.SolvencyRatio),
			d.Source,
		})
	}
	return w.WriteTable(filepath.Join(checksDir, SolvencyDetailFile), headers, records)
}

// WriteDataDictionary writes the static documentation of the facts schema.
// The content is fixed, not derived from the run.
func (w *CSVWriter) WriteDataDictionary() error {
	headers := []string{"Column", "Description", "Type", "Notes"}
	records := [][]string{
		{"Insurer", "Standardized insurer name", "String", "See name_xwalk for original to standardized mapping"},
		{"Year", "Fiscal year ending (e.g., 2024 = FY 2023-24)", "Integer", `Extracted from "YYYY-YY" or "as on 31 March YYYY" format`},
		{"L1", "Product category Level 1", "String", "Values: Linked, Non-Linked, or blank"},
		{"L2", "Product category Level 2", "String", "Values: Participating, Non-Participating, VIP, or blank"},
		{"L3", "Product category Level 3", "String", "Values: Life, Annuity, Pension, Health, or blank"},
		{"Individual_Group", "Business segment", "String", "Values: Individual, Group, Not Applicable"},
		{"Distribution_Channel", "Sales channel", "String", "Values: Individual Agents, Corporate Agents - Banks, Corporate Agents - Others, Brokers, Direct Selling, MI Agents, CSCs, Web Aggregators, IMF, Online, POS, Others, Not Applicable"},
		{"KPI", "Key Performance Indicator", "String", "Total Premium, New Business Premium, New Business Policy, Total Policy (Year-End), Sum Assured (Year-End), Assets Under Management, Solvency Ratio, Persistency (13M/25M/37M/49M/61M, Policy), Number of Offices"},
		{"Value", "Metric value", "Float", "Units: Premium/Sum Assured/AUM in absolute Rupees (converted from Crore x 10,000,000); Policies/Offices as integers; Persistency 0-100; Solvency as-is"},
		{"Source", "Source table reference", "String", "Table number from the handbook"},
	}
	return w.WriteTable(filepath.Join(checksDir, DataDictionaryFile), headers, records)
}
