// Copyright 2019 Tad Lebeck
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/provider/gce"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

// Build information passed in via ld flags
var (
	BuildID   string
	BuildTime string
	BuildHost string
	BuildJob  string
	Appname   string
)

// AppCtx contains common top-level options and state
type AppCtx struct {
	OutputFormat     string `short:"o" long:"output" description:"Output format control" choice:"json" choice:"table" choice:"yaml" default:"table"`
	CredFile         string `short:"c" long:"cred-file" description:"Path of a service account credential JSON file" required:"yes"`
	Zone             string `short:"z" long:"zone" description:"Specify the compute zone" required:"yes"`
	ImageAliasesFile string `long:"image-aliases-file" description:"Path of a JSON file mapping image aliases to source image URLs"`
	DomainID         string `long:"domain-id" description:"Specify the provisioning domain identifier" default:"CLI"`
	TimeoutSecs      int    `short:"t" long:"timeout-seconds" description:"Specify the request timeout in seconds" default:"30"`
	Verbose          bool   `short:"v" long:"verbose" description:"Enable debugging"`
	client           provider.Client
	ctx              context.Context
	Emitter
}

var appCtx = &AppCtx{}
var parser = flags.NewParser(appCtx, flags.Default&^flags.PrintErrors)
var outputWriter io.Writer

func init() {
	outputWriter = os.Stdout
	initParser()
}

func initParser() {
	parser.ShortDescription = Appname
	parser.Usage = "[Application Options]"
	parser.LongDescription = "Provisions compute instances and their disks from a declarative template"
}

// makeClient constructs the provider client from the top-level options
func makeClient() (provider.Client, error) {
	cred, err := ioutil.ReadFile(appCtx.CredFile)
	if err != nil {
		return nil, err
	}
	attrs := map[string]provider.ValueType{
		gce.AttrCred: provider.ValueType{Kind: provider.ValueTypeSecret, Value: string(cred)},
		gce.AttrZone: provider.ValueType{Kind: provider.ValueTypeString, Value: appCtx.Zone},
	}
	if appCtx.ImageAliasesFile != "" {
		aliases, err := ioutil.ReadFile(appCtx.ImageAliasesFile)
		if err != nil {
			return nil, err
		}
		attrs[gce.AttrImageAliases] = provider.ValueType{Kind: provider.ValueTypeString, Value: string(aliases)}
	}
	p, err := provider.New(gce.ProviderType)
	if err != nil {
		return nil, err
	}
	log := logging.MustGetLogger(Appname)
	if appCtx.Verbose {
		logging.SetLevel(logging.DEBUG, Appname)
	} else {
		logging.SetLevel(logging.INFO, Appname)
	}
	p.SetDebugLogger(log)
	dom := &provider.Domain{
		ID:         appCtx.DomainID,
		Type:       gce.ProviderType,
		Attributes: attrs,
	}
	cl, err := p.Client(dom)
	if err != nil {
		return nil, err
	}
	cl.SetTimeout(appCtx.TimeoutSecs)
	return cl, nil
}

func commandHandler(command flags.Commander, args []string) error {
	if command == nil {
		return nil
	}
	cl, err := makeClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
	appCtx.client = cl
	return command.Execute(args)
}

func parseAndRun(args []string) error {
	parser.CommandHandler = commandHandler
	_, err := parser.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("%s", err.Error())
	}
	return nil
}

func main() {
	appCtx.Emitter = &StdoutEmitter{}
	appCtx.ctx = context.Background()
	if err := parseAndRun(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}
