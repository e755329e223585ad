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
	"fmt"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/provider/gce"
	"github.com/cumulo-cloud/provisioner/pkg/util"
	"github.com/docker/go-units"
	"gopkg.in/yaml.v2"
)

func init() {
	initInstance()
}

func initInstance() {
	parser.AddCommand("validate", "Validate credentials", "Validate the domain credentials and zone", &validateCmd{})
	parser.AddCommand("disk-types", "List disk types", "List the disk types usable in a template", &diskTypesCmd{})
	cmd, _ := parser.AddCommand("instance", "Instance commands", "Instance subcommands", &instanceCmd{})
	cmd.AddCommand("allocate", "Allocate instances", "Allocate the instances described by a template", &instanceAllocateCmd{})
	cmd.AddCommand("find", "Find instances", "Find the instances that currently exist", &instanceFindCmd{})
	cmd.AddCommand("states", "Instance states", "Report the state of every instance id", &instanceStatesCmd{})
	cmd.AddCommand("delete", "Delete instances", "Delete the named instances", &instanceDeleteCmd{})
}

// templateFile is the YAML representation of an instance template
type templateFile struct {
	NamePrefix          string   `yaml:"namePrefix"`
	Image               string   `yaml:"image"`
	MachineType         string   `yaml:"machineType"`
	Network             string   `yaml:"network"`
	Subnetwork          string   `yaml:"subnetwork"`
	AssignExternalIP    bool     `yaml:"assignExternalIP"`
	Preemptible         bool     `yaml:"preemptible"`
	BootDiskType        string   `yaml:"bootDiskType"`
	BootDiskSizeGb      int64    `yaml:"bootDiskSizeGb"`
	DataDiskCount       int      `yaml:"dataDiskCount"`
	DataDiskType        string   `yaml:"dataDiskType"`
	DataDiskSizeGb      int64    `yaml:"dataDiskSizeGb"`
	SSHUserName         string   `yaml:"sshUserName"`
	SSHPublicKey        string   `yaml:"sshPublicKey"`
	Tags                []string `yaml:"tags"`
	PollTimeoutSecs     int      `yaml:"pollTimeoutSecs"`
	PollMaxIntervalSecs int      `yaml:"pollMaxIntervalSecs"`
}

// loadTemplate reads an instance template from a YAML file
func loadTemplate(path string) (*provider.InstanceTemplate, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tf := &templateFile{}
	if err = yaml.UnmarshalStrict(b, tf); err != nil {
		return nil, fmt.Errorf("could not parse template file '%s': %s", path, err.Error())
	}
	return &provider.InstanceTemplate{
		NamePrefix:          tf.NamePrefix,
		Image:               tf.Image,
		MachineType:         tf.MachineType,
		Network:             tf.Network,
		Subnetwork:          tf.Subnetwork,
		AssignExternalIP:    tf.AssignExternalIP,
		Preemptible:         tf.Preemptible,
		BootDiskType:        tf.BootDiskType,
		BootDiskSizeGb:      tf.BootDiskSizeGb,
		DataDiskCount:       tf.DataDiskCount,
		DataDiskType:        tf.DataDiskType,
		DataDiskSizeGb:      tf.DataDiskSizeGb,
		SSHUserName:         tf.SSHUserName,
		SSHPublicKey:        tf.SSHPublicKey,
		Tags:                tf.Tags,
		PollTimeoutSecs:     tf.PollTimeoutSecs,
		PollMaxIntervalSecs: tf.PollMaxIntervalSecs,
	}, nil
}

type instanceCmd struct {
	tableCols []string
}

const (
	hInstanceID = "ID"
	hName       = "Name"
	hState      = "State"
	hPrivateIP  = "Private IP"
	hPublicIP   = "Public IP"
)

var instanceHeaders = map[string]string{
	hInstanceID: "instance id",
	hName:       "decorated resource name",
	hState:      "instance state",
	hPrivateIP:  "primary interface address",
	hPublicIP:   "external NAT address",
}

var instanceDefaultHeaders = []string{hInstanceID, hName, hState, hPrivateIP, hPublicIP}

func (c *instanceCmd) makeRecord(o *provider.Instance) map[string]string {
	return map[string]string{
		hInstanceID: o.ID,
		hName:       o.Name,
		hState:      o.State.String(),
		hPrivateIP:  o.PrivateIP,
		hPublicIP:   o.PublicIP,
	}
}

func (c *instanceCmd) validateColumns(columns string) error {
	if matched, _ := regexp.MatchString("^\\s*$", columns); matched {
		c.tableCols = instanceDefaultHeaders
	} else {
		c.tableCols = strings.Split(columns, ",")
		for _, col := range c.tableCols {
			if _, ok := instanceHeaders[col]; !ok {
				return fmt.Errorf("invalid column \"%s\"", col)
			}
		}
	}
	return nil
}

func (c *instanceCmd) Emit(data []*provider.Instance) error {
	switch appCtx.OutputFormat {
	case "json":
		return appCtx.EmitJSON(data)
	case "yaml":
		return appCtx.EmitYAML(data)
	}
	rows := make([][]string, len(data))
	for i, o := range data {
		rec := c.makeRecord(o)
		row := make([]string, len(c.tableCols))
		for j, h := range c.tableCols {
			row[j] = rec[h]
		}
		rows[i] = row
	}
	return appCtx.EmitTable(c.tableCols, rows, nil)
}

type validateCmd struct{}

func (c *validateCmd) Execute(args []string) error {
	if err := appCtx.client.Validate(appCtx.ctx); err != nil {
		return err
	}
	fmt.Fprintf(outputWriter, "Domain %s validated\n", appCtx.client.ID())
	return nil
}

type diskTypesCmd struct{}

func (c *diskTypesCmd) Execute(args []string) error {
	data := gce.SupportedDiskTypes()
	switch appCtx.OutputFormat {
	case "json":
		return appCtx.EmitJSON(data)
	case "yaml":
		return appCtx.EmitYAML(data)
	}
	headers := []string{"Name", "Min Size", "Max Size", "Ephemeral", "Description"}
	rows := make([][]string, len(data))
	for i, dt := range data {
		rows[i] = []string{
			dt.Name,
			util.SizeBytesToString(dt.MinSizeGb * units.GiB),
			util.SizeBytesToString(dt.MaxSizeGb * units.GiB),
			fmt.Sprintf("%v", dt.Ephemeral),
			dt.Description,
		}
	}
	return appCtx.EmitTable(headers, rows, nil)
}

type instanceAllocateCmd struct {
	TemplateFile string   `short:"T" long:"template-file" description:"Path of the instance template YAML file" required:"yes"`
	IDs          []string `short:"I" long:"id" description:"An instance id; repeat for each instance" required:"yes"`
	MinCount     int      `short:"m" long:"min-count" description:"The minimum number of instances that must exist for the batch to succeed"`
	Columns      string   `long:"columns" description:"Comma separated list of column names"`
	instanceCmd
}

func (c *instanceAllocateCmd) Execute(args []string) error {
	if err := c.validateColumns(c.Columns); err != nil {
		return err
	}
	tmpl, err := loadTemplate(c.TemplateFile)
	if err != nil {
		return err
	}
	aa := &provider.AllocateArgs{
		Template:    tmpl,
		InstanceIDs: c.IDs,
		MinCount:    c.MinCount,
	}
	if err = appCtx.client.Allocate(appCtx.ctx, aa); err != nil {
		return err
	}
	res, err := appCtx.client.Find(appCtx.ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: c.IDs})
	if err != nil {
		return err
	}
	return c.Emit(res)
}

type instanceFindCmd struct {
	TemplateFile string   `short:"T" long:"template-file" description:"Path of the instance template YAML file" required:"yes"`
	IDs          []string `short:"I" long:"id" description:"An instance id; repeat for each instance" required:"yes"`
	Columns      string   `long:"columns" description:"Comma separated list of column names"`
	instanceCmd
}

func (c *instanceFindCmd) Execute(args []string) error {
	if err := c.validateColumns(c.Columns); err != nil {
		return err
	}
	tmpl, err := loadTemplate(c.TemplateFile)
	if err != nil {
		return err
	}
	res, err := appCtx.client.Find(appCtx.ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: c.IDs})
	if err != nil {
		return err
	}
	return c.Emit(res)
}

type instanceStatesCmd struct {
	TemplateFile string   `short:"T" long:"template-file" description:"Path of the instance template YAML file" required:"yes"`
	IDs          []string `short:"I" long:"id" description:"An instance id; repeat for each instance" required:"yes"`
}

func (c *instanceStatesCmd) Execute(args []string) error {
	tmpl, err := loadTemplate(c.TemplateFile)
	if err != nil {
		return err
	}
	states, err := appCtx.client.InstanceStates(appCtx.ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: c.IDs})
	if err != nil {
		return err
	}
	switch appCtx.OutputFormat {
	case "json":
		return appCtx.EmitJSON(states)
	case "yaml":
		return appCtx.EmitYAML(states)
	}
	rows := [][]string{}
	for _, id := range util.SortedStringKeys(states) {
		rows = append(rows, []string{id, states[id].String()})
	}
	return appCtx.EmitTable([]string{hInstanceID, hState}, rows, nil)
}

type instanceDeleteCmd struct {
	TemplateFile string   `short:"T" long:"template-file" description:"Path of the instance template YAML file" required:"yes"`
	IDs          []string `short:"I" long:"id" description:"An instance id; repeat for each instance" required:"yes"`
	Confirm      bool     `long:"confirm" description:"Confirm the deletion of the instances"`
}

func (c *instanceDeleteCmd) Execute(args []string) error {
	if !c.Confirm {
		return fmt.Errorf("specify --confirm to delete the instances")
	}
	tmpl, err := loadTemplate(c.TemplateFile)
	if err != nil {
		return err
	}
	da := &provider.DeleteArgs{
		Template:    tmpl,
		InstanceIDs: c.IDs,
	}
	if err = appCtx.client.Delete(appCtx.ctx, da); err != nil {
		return err
	}
	fmt.Fprintf(outputWriter, "Deleted %d instances\n", len(c.IDs))
	return nil
}
