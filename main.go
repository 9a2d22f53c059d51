// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bonjourzzz/OutlookMaster-MCP/config"
	"github.com/bonjourzzz/OutlookMaster-MCP/imapstore"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
	"github.com/bonjourzzz/OutlookMaster-MCP/persistence"
	"github.com/bonjourzzz/OutlookMaster-MCP/refcache"
	"github.com/bonjourzzz/OutlookMaster-MCP/tools"

	"github.com/sirupsen/logrus"
)

// request is one line on stdin: a tool invocation or the "tools" listing
// command.
type request struct {
	Tool string     `json:"tool"`
	Args tools.Args `json:"args"`
}

type toolDescription struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Parameters  []tools.ParameterSpec `json:"parameters,omitempty"`
}

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	store, err := imapstore.NewStore(conf.ImapHost, conf.User, conf.Password)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to imap server")
	}
	defer store.Close()

	cache := refcache.New(conf.CacheFile)

	ops, err := mailops.NewMailOps(store, cache,
		mailops.WithRules(p),
		mailops.WithTasks(p),
		mailops.WithContacts(p),
		mailops.WithCalendar(p),
		mailops.WithTemplates(p),
		mailops.WithAttachmentDir(conf.AttachmentDir),
		mailops.WithExportDir(conf.ExportDir),
		mailops.WithMaxDays(conf.MaxDays),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start mail operations")
	}

	registry := tools.NewRegistry(ops)

	logger.WithFields(logrus.Fields{"host": conf.ImapHost, "user": conf.User}).Info("Ready, reading tool requests from stdin")
	serve(registry, logger)
}

// serve reads one JSON request per stdin line and answers each on stdout.
func serve(registry *tools.Registry, logger *logrus.Logger) {
	encoder := json.NewEncoder(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		err := json.Unmarshal(line, &req)
		if err != nil {
			answer(encoder, logger, &tools.Result{Success: false, Error: fmt.Sprintf("invalid request: %v", err)})
			continue
		}

		if req.Tool == "tools" {
			answerToolList(encoder, logger, registry)
			continue
		}

		result, err := registry.Execute(req.Tool, req.Args)
		if err != nil {
			result = &tools.Result{Success: false, Error: err.Error()}
		}
		answer(encoder, logger, result)
	}

	if err := scanner.Err(); err != nil {
		logger.WithField("error", err).Fatal("Could not read from stdin")
	}
}

func answer(encoder *json.Encoder, logger *logrus.Logger, result *tools.Result) {
	err := encoder.Encode(result)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not write to stdout")
	}
}

func answerToolList(encoder *json.Encoder, logger *logrus.Logger, registry *tools.Registry) {
	descriptions := []toolDescription{}
	for _, tool := range registry.Tools() {
		descriptions = append(descriptions, toolDescription{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	data, err := json.Marshal(descriptions)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not render tool list")
	}
	answer(encoder, logger, &tools.Result{Success: true, Output: string(data)})
}
