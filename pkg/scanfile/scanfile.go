package scanfile

import (
	"errors"
	"os"

	"github.com/tidwall/gjson"

	"github.com/vexfind/vexfind/config"
)

// Service is one open-port finding of the upstream scanner. The order
// of services in the scan file is discovery order and defines the row
// order of the final report.
type Service struct {
	PortNumber     int    `json:"port_number"`
	ServiceName    string `json:"service_name"`
	ServiceVersion string `json:"service_version"`
}

// Parse reads the scanner's JSON report and returns its services in
// file order. The report keeps them under the "ports_services" field.
func Parse(data []byte) ([]Service, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("scan result is not valid JSON")
	}

	entries := gjson.GetBytes(data, "ports_services")
	if !entries.IsArray() {
		return nil, errors.New("scan result has no ports_services list")
	}

	services := []Service{}
	entries.ForEach(func(_, entry gjson.Result) bool {
		s := Service{
			PortNumber:     int(entry.Get("port_number").Int()),
			ServiceName:    entry.Get("service_name").String(),
			ServiceVersion: entry.Get("service_version").String(),
		}

		if s.ServiceName == "" {
			s.ServiceName = config.Unknown
		}
		if s.ServiceVersion == "" {
			s.ServiceVersion = config.Unknown
		}

		services = append(services, s)
		return true
	})

	if len(services) == 0 {
		return nil, errors.New("scan result contains no services")
	}

	return services, nil
}

// ParseFile is Parse on the content of a file.
func ParseFile(filename string) ([]Service, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}
