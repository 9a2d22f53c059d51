// SPDX-License-Identifier: GPL-3.0-or-later

// Package tools exposes the mail operations as a named, self-describing
// tool surface. Each tool carries a parameter specification so a caller
// can discover the available operations and drive them with loosely typed
// argument maps.
package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/log"
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"

	"github.com/sirupsen/logrus"
)

type ParameterSpec struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required,omitempty"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

type Result struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Args map[string]any

type Tool struct {
	Name        string
	Description string
	Parameters  []ParameterSpec

	run func(args Args) (string, error)
}

type Registry struct {
	tools map[string]*Tool

	l *logrus.Logger
}

// NewRegistry builds the full tool surface over the given operations.
func NewRegistry(ops *mailops.MailOps) *Registry {
	registry := &Registry{
		tools: map[string]*Tool{},
		l:     log.Logger(log.LOG_TOOLS),
	}

	for _, group := range [][]*Tool{
		listingTools(ops),
		messageTools(ops),
		assistTools(ops),
		statsTools(ops),
		organizerTools(ops),
	} {
		for _, tool := range group {
			registry.register(tool)
		}
	}

	return registry
}

func (r *Registry) register(tool *Tool) {
	if _, exists := r.tools[tool.Name]; exists {
		panic(fmt.Sprintf("duplicate tool name %q", tool.Name))
	}
	r.tools[tool.Name] = tool
}

// Tools returns the registered tools in name order.
func (r *Registry) Tools() []*Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]*Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, r.tools[name])
	}

	return tools
}

// Execute runs a tool by name. Operation failures are reported inside the
// Result; only an unknown tool name is an error.
func (r *Registry) Execute(name string, args Args) (*Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	r.l.WithFields(logrus.Fields{"tool": name}).Debug("Executing tool")

	output, err := tool.run(args)
	if err != nil {
		r.l.WithFields(logrus.Fields{"tool": name, "error": err}).Info("Tool failed")
		return &Result{Success: false, Error: err.Error()}, nil
	}

	return &Result{Success: true, Output: output}, nil
}

func stringArg(args Args, name, fallback string) string {
	value, ok := args[name]
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		return fallback
	}

	return s
}

// intArg accepts both float64 (JSON numbers) and int values.
func intArg(args Args, name string, fallback int) int {
	value, ok := args[name]
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	}

	return fallback
}

func boolArg(args Args, name string, fallback bool) bool {
	value, ok := args[name]
	if !ok {
		return fallback
	}
	b, ok := value.(bool)
	if !ok {
		return fallback
	}

	return b
}

func stringMapArg(args Args, name string) map[string]string {
	value, ok := args[name]
	if !ok {
		return nil
	}
	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	result := map[string]string{}
	for key, entry := range raw {
		if s, ok := entry.(string); ok {
			result[key] = s
		}
	}

	return result
}

// requiredString reports a usable error when a mandatory argument is
// missing or blank.
func requiredString(args Args, name string) (string, error) {
	value := stringArg(args, name, "")
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("argument %q is required", name)
	}

	return value, nil
}

func requiredInt(args Args, name string) (int, error) {
	value := intArg(args, name, 0)
	if value == 0 {
		return 0, fmt.Errorf("argument %q is required", name)
	}

	return value, nil
}

var handleParameter = ParameterSpec{
	Name: "email_number", Type: "number", Required: true,
	Description: "Email number from the most recent listing or search",
}

var daysParameter = ParameterSpec{
	Name: "days", Type: "number", Default: mailops.DefaultDays,
	Description: "How many days back to look",
}

var folderParameter = ParameterSpec{
	Name: "folder", Type: "string",
	Description: "Folder name; the inbox when omitted",
}
