package spreadsheet

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatXLSX, DetectFormat(workbook(t, []interface{}{"a"})))
	assert.Equal(t, FormatXLS, DetectFormat([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}))
	assert.Equal(t, FormatUnknown, DetectFormat([]byte("Nome Completo;Sexo\n")))
	assert.Equal(t, FormatUnknown, DetectFormat(nil))
}

func TestReadHeader(t *testing.T) {
	data := workbook(t,
		[]interface{}{" Nome Completo ", "Profissão", "Outra"},
		[]interface{}{"Ana", "Médica", "x"},
	)

	header, err := ReadHeader(data)
	require.NoError(t, err)

	assert.Equal(t, domain.Header{"Nome Completo", "Profissão", "Outra"}, header)
}

func TestReadProjectsRecognizedColumns(t *testing.T) {
	data := workbook(t,
		[]interface{}{"Cidade", "Ignorada", "Nome Completo", "Data de Nascimento"},
		[]interface{}{"Recife", "zzz", "Ana", time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)},
		[]interface{}{nil, nil, nil, nil},
		[]interface{}{"Natal", "yyy", "Bruno", "02/01/1985"},
		[]interface{}{nil, "only ignored", nil, nil},
	)

	columns := domain.DemographicSchema.Recognize(domain.Header{"Cidade", "Ignorada", "Nome Completo", "Data de Nascimento"})

	table, err := Read(data, columns)
	require.NoError(t, err)

	want := domain.RawTable{
		Header: domain.Header{"Nome Completo", "Data de Nascimento", "Cidade"},
		Records: []domain.Record{
			{"Ana", "15/03/1990", "Recife"},
			{"Bruno", "02/01/1985", "Natal"},
			{"", "", ""},
		},
	}

	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadXLS(t *testing.T) {
	// Pacientes sheet: a text column, a date-formatted column holding serial
	// 32947 for Ana and a text date for Bruno.
	data, err := os.ReadFile("testdata/patients.xls")
	require.NoError(t, err)
	require.Equal(t, FormatXLS, DetectFormat(data))

	header, err := ReadHeader(data)
	require.NoError(t, err)
	assert.Equal(t, domain.Header{"Nome Completo", "Data de Nascimento", "Cidade"}, header)

	table, err := Read(data, domain.DemographicSchema.Recognize(header))
	require.NoError(t, err)

	want := domain.RawTable{
		Header: domain.Header{"Nome Completo", "Data de Nascimento", "Cidade"},
		Records: []domain.Record{
			{"Ana", "15/03/1990", "Recife"},
			{"Bruno", "02/01/1985", "Natal"},
		},
	}

	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadShortRows(t *testing.T) {
	data := workbook(t,
		[]interface{}{"Nome do Paciente", "Diagnóstico", "Registro de Encerramento"},
		[]interface{}{"Ana"},
	)

	table, err := Read(data, domain.ClinicalSchema.Recognize(domain.Header{"Nome do Paciente", "Diagnóstico", "Registro de Encerramento"}))
	require.NoError(t, err)

	require.Len(t, table.Records, 1)
	assert.Equal(t, domain.Record{"Ana", "", ""}, table.Records[0])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "unknown format",
			data:    []byte("not a spreadsheet"),
			wantErr: ErrUnsupportedFormat,
		},
		{
			name: "truncated zip",
			data: append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("garbage")...),
		},
		{
			name: "truncated ole2",
			data: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x01, 0x02},
		},
		{
			name:    "empty worksheet",
			data:    workbook(t),
			wantErr: ErrEmptyWorksheet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHeader(tt.data)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestReadMissingColumn(t *testing.T) {
	data := workbook(t, []interface{}{"Sexo"}, []interface{}{"F"})

	_, err := Read(data, []domain.Column{{Source: "Cidade", Canonical: domain.FieldCity}})
	assert.Error(t, err)
}

func TestRenderDate(t *testing.T) {
	assert.Equal(t, "15/03/1990", renderDate(cell{text: "3/15/90", serial: "32947"}, false))
	assert.Equal(t, "não informado", renderDate(cell{text: "não informado"}, false))
	assert.Equal(t, "0", renderDate(cell{text: "0", serial: "0"}, false))
}
