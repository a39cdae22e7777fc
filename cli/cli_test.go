package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiforecast/modelkit/frame"
	"github.com/epiforecast/modelkit/samples"
	"github.com/epiforecast/modelkit/timeseries"
)

type stubModel struct {
	Mean       float64 `json:"mean"`
	NumSamples int     `json:"num_samples"`
}

func (m *stubModel) Train(data *timeseries.Dataset, cfg map[string]any) error {
	y, err := data.Values("disease_cases")
	if err != nil {
		return err
	}
	var sum float64
	for _, v := range y {
		sum += v
	}
	m.Mean = sum / float64(len(y))
	if v, ok := cfg["num_samples"].(int); ok {
		m.NumSamples = v
	}
	return nil
}

func (m *stubModel) Predict(historic, future *timeseries.Dataset, cfg map[string]any) (*frame.Frame, error) {
	periods := future.Periods()
	locCol, _ := future.Frame.Col(future.LocationColumn)

	locations := make([]string, 0, len(periods))
	lists := make([][]float64, 0, len(periods))
	for i := range periods {
		locations = append(locations, locCol.Cell(i))
		seq := make([]float64, m.NumSamples)
		for j := range seq {
			seq[j] = m.Mean + float64(j)
		}
		lists = append(lists, seq)
	}
	return frame.New(
		frame.NewStringColumn("time_period", periods),
		frame.NewStringColumn("location", locations),
		frame.NewListColumn(samples.SamplesColumn, lists),
	)
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTrainPredictPlot(t *testing.T) {
	dir := t.TempDir()
	trainPath := writeFixture(t, dir, "training.csv",
		"time_period,location,disease_cases\n2013-01,Bokeo,10\n2013-02,Bokeo,12\n2013-03,Bokeo,8\n")
	futurePath := writeFixture(t, dir, "future.csv",
		"time_period,location\n2013-04,Bokeo\n2013-05,Bokeo\n")
	cfgPath := writeFixture(t, dir, "config.yaml", "num_samples: 4\n")
	modelPath := filepath.Join(dir, "model.json")
	outPath := filepath.Join(dir, "predictions.csv")
	htmlPath := filepath.Join(dir, "predictions.html")

	trainCmd := New("stub", &stubModel{})
	trainCmd.SetArgs([]string{"train", trainPath, modelPath, "--config", cfgPath})
	require.NoError(t, trainCmd.Execute())
	require.FileExists(t, modelPath)

	predictCmd := New("stub", &stubModel{})
	predictCmd.SetArgs([]string{"predict", modelPath, trainPath, futurePath, outPath})
	require.NoError(t, predictCmd.Execute())

	wide, err := frame.ReadCSVFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, samples.FormatWide, samples.DetectFormat(wide))
	assert.Equal(t, 2, wide.NumRows())
	assert.Equal(t, []string{"time_period", "location", "sample_0", "sample_1", "sample_2", "sample_3"}, wide.Names())

	s0, err := wide.Floats("sample_0")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10}, s0)

	plotCmd := New("stub", &stubModel{})
	plotCmd.SetArgs([]string{"plot", outPath, htmlPath})
	require.NoError(t, plotCmd.Execute())
	require.FileExists(t, htmlPath)
}

func TestTrainMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	trainCmd := New("stub", &stubModel{})
	trainCmd.SetArgs([]string{"train", filepath.Join(dir, "missing.csv"), filepath.Join(dir, "model.json")})
	assert.Error(t, trainCmd.Execute())
}

func TestPredictMissingModelFile(t *testing.T) {
	dir := t.TempDir()
	futurePath := writeFixture(t, dir, "future.csv", "time_period,location\n2013-04,Bokeo\n")
	predictCmd := New("stub", &stubModel{})
	predictCmd.SetArgs([]string{"predict", filepath.Join(dir, "model.json"), futurePath, futurePath, filepath.Join(dir, "out.csv")})
	assert.Error(t, predictCmd.Execute())
}
