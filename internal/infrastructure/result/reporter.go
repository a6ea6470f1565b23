package result

import (
	"encoding/json"
	"fmt"
	"io"

	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/entities"
	"cl-interface/internal/domain/errors"
	"cl-interface/pkg/canonical"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ModuleResult is the document returned to the host engine
type ModuleResult struct {
	Changed   bool          `json:"changed" yaml:"changed"`
	Failed    bool          `json:"failed,omitempty" yaml:"failed,omitempty"`
	Msg       string        `json:"msg,omitempty" yaml:"msg,omitempty"`
	IfaceType string        `json:"ifacetype,omitempty" yaml:"ifacetype,omitempty"`
	Iface     canonical.Map `json:"iface,omitempty" yaml:"iface,omitempty"`
}

// Success builds the result of a classified request. Nothing is provisioned,
// so changed is always false.
func Success(ifaceType entities.InterfaceType, iface canonical.Map) ModuleResult {
	return ModuleResult{
		Changed:   false,
		IfaceType: ifaceType.String(),
		Iface:     iface,
	}
}

// Failure builds the result of a failed invocation
func Failure(err error) ModuleResult {
	return ModuleResult{
		Failed: true,
		Msg:    errors.MessageOf(err),
	}
}

// ExitCode returns the process exit code for the result
func (r ModuleResult) ExitCode() int {
	if r.Failed {
		return 1
	}
	return 0
}

// Reporter writes module results to the host engine
type Reporter struct {
	out    io.Writer
	format string
	logger *logrus.Logger
}

// NewReporter creates a new Reporter writing in the given format (json or yaml)
func NewReporter(out io.Writer, format string, logger *logrus.Logger) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
		logger: logger,
	}
}

// Report writes the result as a single document
func (r *Reporter) Report(res ModuleResult) error {
	var err error
	switch r.format {
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err = enc.Encode(res); err == nil {
			err = enc.Close()
		}
	case constants.OutputFormatJSON, "":
		err = json.NewEncoder(r.out).Encode(res)
	default:
		err = fmt.Errorf("unknown output format %q", r.format)
	}
	if err != nil {
		return errors.NewSystemError("failed to write module result", err)
	}

	r.logger.WithFields(logrus.Fields{
		"failed":    res.Failed,
		"ifacetype": res.IfaceType,
		"format":    r.format,
	}).Debug("Module result reported")

	return nil
}
