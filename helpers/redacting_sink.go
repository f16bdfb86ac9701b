package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// dsnPatterns match data source names carrying a password, for both
// database drivers. The password is the second group.
var dsnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^((?:postgres|postgresql)://[^:/@]+:)([^@]+)(@.+)$`),
	regexp.MustCompile(`^([^:/@\s]+:)([^@\s]+)(@(?:tcp|unix)\(.*)$`),
}

const redacted = "*REDACTED*"

// DSNRedacter hides secrets in lager JSON lines: values under sensitive keys
// and passwords inside database data source names.
type DSNRedacter struct {
	jsonRedacter *lager.JSONRedacter
}

func NewDSNRedacter(keyPatterns []string, valuePatterns []string) (*DSNRedacter, error) {
	jsonRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &DSNRedacter{jsonRedacter: jsonRedacter}, nil
}

func (r *DSNRedacter) Redact(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	var blob interface{}
	if err := json.Unmarshal(data, &blob); err != nil {
		return serialisationError(err)
	}
	data, err := json.Marshal(redactDSNs(blob))
	if err != nil {
		return serialisationError(err)
	}
	return r.jsonRedacter.Redact(data)
}

func redactDSNs(v interface{}) interface{} {
	switch t := v.(type) {
	case []interface{}:
		for i := range t {
			t[i] = redactDSNs(t[i])
		}
	case map[string]interface{}:
		for k := range t {
			t[k] = redactDSNs(t[k])
		}
	case string:
		for _, p := range dsnPatterns {
			if p.MatchString(t) {
				return p.ReplaceAllString(t, "${1}"+redacted+"${3}")
			}
		}
	}
	return v
}

func serialisationError(err error) []byte {
	content, _ := json.Marshal(map[string]string{"lager serialisation error": err.Error()})
	return content
}

type timeLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func newTimeLogFormat(log lager.LogFormat) timeLogFormat {
	sec, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		sec = 0
	}
	return timeLogFormat{
		LogFormat: log,
		LogTime:   time.Unix(int64(sec), 0).UTC().Format(time.RFC3339),
	}
}

func (f timeLogFormat) toJSON() []byte {
	content, err := json.Marshal(f)
	if err != nil {
		f.Data = lager.Data{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", f.Data)}
		if content, err = json.Marshal(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
			content = []byte("{}")
		}
	}
	return content
}

type redactingSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	lock        sync.Mutex
	redacter    *DSNRedacter
}

// NewRedactingSink writes redacted JSON lines with an RFC 3339 log_time.
func NewRedactingSink(w io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewDSNRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingSink{writer: w, minLogLevel: minLogLevel, redacter: redacter}, nil
}

func (s *redactingSink) Log(log lager.LogFormat) {
	if log.LogLevel < s.minLogLevel {
		return
	}
	line := s.redacter.Redact(newTimeLogFormat(log).toJSON())

	s.lock.Lock()
	defer s.lock.Unlock()
	_, _ = s.writer.Write(line)
	_, _ = s.writer.Write([]byte("\n"))
}
