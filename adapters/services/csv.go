package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/SeaCloudHub/customers/domain/customer"
)

var (
	csvServiceInstance *csvService
	once               sync.Once
)

type csvService struct{}

func NewCSVService() *csvService {
	once.Do(func() {
		csvServiceInstance = &csvService{}
	})
	return csvServiceInstance
}

func (c *csvService) CsvToEntities(r io.Reader,
	entityMapper func(record []string) (interface{}, error)) ([]interface{}, error) {
	csvReader := csv.NewReader(r)

	// Skip header
	_, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	var entityList []interface{}
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		entity, err := entityMapper(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entityList = append(entityList, entity)
	}

	return entityList, nil
}

// CustomerRecord is one row of a customer import file:
// id,name,street,number,zip,city
type CustomerRecord struct {
	ID      string
	Name    string
	Address *customer.Address
}

func CustomerRecordMapper(record []string) (interface{}, error) {
	if len(record) != 2 && len(record) != 6 {
		return nil, fmt.Errorf("expected 2 or 6 columns, got %d", len(record))
	}

	r := CustomerRecord{
		ID:   strings.TrimSpace(record[0]),
		Name: strings.TrimSpace(record[1]),
	}

	if len(record) == 6 {
		number, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("invalid address number %q: %w", record[3], err)
		}

		address := customer.NewAddress(strings.TrimSpace(record[2]), number,
			strings.TrimSpace(record[4]), strings.TrimSpace(record[5]))
		r.Address = &address
	}

	return r, nil
}
