package params

import (
	"fmt"
	"sort"
	"strings"

	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/entities"
	"cl-interface/internal/domain/errors"
	"cl-interface/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// optionKind describes how a parameter value is interpreted
type optionKind int

const (
	kindString optionKind = iota
	kindList
)

type option struct {
	kind     optionKind
	required bool
}

// argumentSpec lists the parameters the module accepts
var argumentSpec = map[string]option{
	constants.ParamName:       {kind: kindString, required: true},
	constants.ParamBridgeMems: {kind: kindList},
	constants.ParamBondMems:   {kind: kindList},
	constants.ParamIPv4:       {kind: kindList},
	constants.ParamIPv6:       {kind: kindList},
}

// mutuallyExclusive lists parameter groups of which at most one may be set
var mutuallyExclusive = [][]string{
	{constants.ParamBridgeMems, constants.ParamBondMems},
}

// FileArgumentLoader reads the arguments file written by the host engine
type FileArgumentLoader struct {
	fileSystem interfaces.FileSystem
	logger     *logrus.Logger
}

// NewFileArgumentLoader creates a new FileArgumentLoader
func NewFileArgumentLoader(fs interfaces.FileSystem, logger *logrus.Logger) interfaces.ArgumentLoader {
	return &FileArgumentLoader{
		fileSystem: fs,
		logger:     logger,
	}
}

// Load reads, parses and binds the arguments file at path
func (l *FileArgumentLoader) Load(path string) (entities.InterfaceRequest, error) {
	if path == "" {
		return entities.InterfaceRequest{}, errors.NewValidationError("arguments file not specified", nil)
	}
	if !l.fileSystem.Exists(path) {
		return entities.InterfaceRequest{}, errors.NewValidationError(fmt.Sprintf("arguments file %s not found", path), nil)
	}

	content, err := l.fileSystem.ReadFile(path)
	if err != nil {
		return entities.InterfaceRequest{}, errors.NewSystemError("failed to read arguments file", err)
	}

	raw, err := Parse(content)
	if err != nil {
		return entities.InterfaceRequest{}, err
	}

	req, err := Bind(raw)
	if err != nil {
		return entities.InterfaceRequest{}, err
	}

	l.logger.WithFields(logrus.Fields{
		"args_file":   path,
		"name":        req.Name,
		"bridgemems":  req.BridgeMembers,
		"bondmems":    req.BondMembers,
		"ipv4":        req.IPv4,
		"ipv6":        req.IPv6,
		"param_count": len(raw),
	}).Debug("Arguments loaded")

	return req, nil
}

// Bind checks raw arguments against the declared arguments and converts them
// into an InterfaceRequest. Checks run in the order the host engine runs
// them: unsupported parameters, mutual exclusion, required parameters.
func Bind(raw RawArguments) (entities.InterfaceRequest, error) {
	var unsupported []string
	for key := range raw {
		if strings.HasPrefix(key, constants.InternalParamPrefix) {
			continue
		}
		if _, ok := argumentSpec[key]; !ok {
			unsupported = append(unsupported, key)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return entities.InterfaceRequest{}, errors.NewValidationError(
			fmt.Sprintf("unsupported parameters: %s", strings.Join(unsupported, ", ")), nil)
	}

	values := make(map[string]interface{}, len(argumentSpec))
	for key, opt := range argumentSpec {
		value, err := convert(key, opt, raw[key])
		if err != nil {
			return entities.InterfaceRequest{}, err
		}
		values[key] = value
	}

	for _, group := range mutuallyExclusive {
		set := 0
		for _, key := range group {
			if items, _ := values[key].([]string); len(items) > 0 {
				set++
			}
		}
		if set > 1 {
			err := errors.NewConflictError(fmt.Sprintf("parameters are mutually exclusive: %s", strings.Join(group, "|")))
			err.Resource = strings.Join(group, "|")
			return entities.InterfaceRequest{}, err
		}
	}

	var missing []string
	for key, opt := range argumentSpec {
		if !opt.required {
			continue
		}
		if s, _ := values[key].(string); s == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		err := errors.NewValidationError(fmt.Sprintf("missing required arguments: %s", strings.Join(missing, ", ")), nil)
		err.Resource = strings.Join(missing, ", ")
		return entities.InterfaceRequest{}, err
	}

	name, _ := values[constants.ParamName].(string)
	bridgeMembers, _ := values[constants.ParamBridgeMems].([]string)
	bondMembers, _ := values[constants.ParamBondMems].([]string)
	ipv4, _ := values[constants.ParamIPv4].([]string)
	ipv6, _ := values[constants.ParamIPv6].([]string)

	return entities.InterfaceRequest{
		Name:          name,
		BridgeMembers: bridgeMembers,
		BondMembers:   bondMembers,
		IPv4:          ipv4,
		IPv6:          ipv6,
	}, nil
}

func convert(key string, opt option, value interface{}) (interface{}, error) {
	switch opt.kind {
	case kindString:
		switch v := value.(type) {
		case nil:
			return "", nil
		case string:
			return strings.TrimSpace(v), nil
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("parameter %s must be a string", key), nil)
		}
	case kindList:
		switch v := value.(type) {
		case nil:
			return []string(nil), nil
		case []string:
			return v, nil
		case string:
			items, err := splitList(v)
			if err != nil {
				return nil, errors.NewValidationError(fmt.Sprintf("parameter %s is not a valid list", key), err)
			}
			return items, nil
		}
	}
	return nil, errors.NewValidationError(fmt.Sprintf("parameter %s has an unsupported value type", key), nil)
}
