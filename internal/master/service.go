package master

import (
	"encoding/csv"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// DefaultProvince fills in uploads that omit the province column.
const DefaultProvince = "MASBATE"

var ErrNoRecords = errors.New("no master records found in file")

type MasterService struct {
	DB *gorm.DB
}

func NewMasterService(db *gorm.DB) *MasterService {
	return &MasterService{DB: db}
}

// ReplaceAll swaps out the entire master list in one transaction.
func (s *MasterService) ReplaceAll(records []Record) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (s *MasterService) GetAll() ([]Record, error) {
	var records []Record
	if err := s.DB.Order("hhid").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MasterService) GetByHHID(hhid string) (*Record, error) {
	var record Record
	if err := s.DB.Where("hhid = ?", hhid).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ParseUpload reads a CSV or Excel master list from a multipart upload and
// maps its columns onto records. Header names are matched case-insensitively
// against the aliases the regional office uses across its exports.
func (s *MasterService) ParseUpload(fileHeader *multipart.FileHeader) ([]Record, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	var rows [][]string
	switch ext {
	case ".xlsx", ".xls":
		rows, err = readExcelRows(file)
	default:
		rows, err = readCSVRows(file)
	}
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// column aliases, all compared lowercase
var (
	hhidAliases     = []string{"hhid", "id", "hh id"}
	muniAliases     = []string{"municipality", "city", "muni"}
	barangayAliases = []string{"barangay", "brgy"}
	granteeAliases  = []string{"granteename", "grantee_name", "name", "grantee name"}
	provinceAliases = []string{"province"}
)

func headerIndex(headers []string, aliases []string) int {
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowsToRecords(rows [][]string) ([]Record, error) {
	if len(rows) < 2 {
		return nil, ErrNoRecords
	}

	headers := rows[0]
	idIdx := headerIndex(headers, hhidAliases)
	if idIdx < 0 {
		return nil, errors.New("missing household id column")
	}
	muniIdx := headerIndex(headers, muniAliases)
	brgyIdx := headerIndex(headers, barangayAliases)
	nameIdx := headerIndex(headers, granteeAliases)
	provIdx := headerIndex(headers, provinceAliases)

	seen := make(map[string]bool)
	var records []Record
	for _, row := range rows[1:] {
		id := cell(row, idIdx)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		province := cell(row, provIdx)
		if province == "" {
			province = DefaultProvince
		}
		records = append(records, Record{
			HHID:         id,
			Province:     province,
			Municipality: cell(row, muniIdx),
			Barangay:     cell(row, brgyIdx),
			GranteeName:  cell(row, nameIdx),
		})
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// TemplateCSV returns the downloadable upload template with one example row.
func TemplateCSV() string {
	return "ID,Client Status,City,Barangay,Name,Province\n" +
		"054102010-0807-00020,1 - Active,BALENO,GABI,ESQUILONA ROSE MARIE BANCULO,MASBATE\n"
}
