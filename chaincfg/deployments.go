// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// AlwaysActive is the deployment start time which marks a deployment as
	// active from genesis without any signalling.
	AlwaysActive int64 = -1

	// NoTimeout is the deployment timeout which marks a deployment as never
	// failing.
	NoTimeout int64 = math.MaxInt64

	// VBParamsArg is the name of the argument holding deployment overrides
	// for the regression test network.
	VBParamsArg = "vbparams"
)

// DeploymentID identifies a consensus rule change deployment.
type DeploymentID uint32

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the
// details of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package.
	DeploymentSegwit

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// deploymentNames maps deployment ids to the names used in overrides and
// version bits reporting.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
}

// String returns the DeploymentID as a human-readable name.
func (id DeploymentID) String() string {
	if id < DefinedDeployments {
		return deploymentNames[id]
	}
	return fmt.Sprintf("Unknown DeploymentID (%d)", uint32(id))
}

// DeploymentByName returns the id of the deployment with the passed name along
// with whether or not such a deployment exists.
func DeploymentByName(name string) (DeploymentID, bool) {
	for id, n := range deploymentNames {
		if n == name {
			return DeploymentID(id), true
		}
	}
	return 0, false
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.  AlwaysActive marks the deployment active from
	// genesis.
	StartTime int64

	// Timeout is the median block time after which the attempted deployment
	// fails.  NoTimeout disables failure.
	Timeout int64
}

// IsAlwaysActive returns whether the deployment is active from genesis.
func (d *ConsensusDeployment) IsAlwaysActive() bool {
	return d.StartTime == AlwaysActive
}

// HasTimeout returns whether the deployment can fail.
func (d *ConsensusDeployment) HasTimeout() bool {
	return d.Timeout != NoTimeout
}

// Deployment returns the deployment details for the passed id.
func (p *Params) Deployment(id DeploymentID) (ConsensusDeployment, error) {
	if id >= DefinedDeployments {
		str := fmt.Sprintf("deployment ID %d does not exist", uint32(id))
		return ConsensusDeployment{}, contextError(ErrUnknownDeployment, str)
	}
	return p.Deployments[id], nil
}

// ArgSource provides read access to named process arguments.
type ArgSource interface {
	// IsArgSet returns whether the named argument was provided.
	IsArgSet(name string) bool

	// GetArgs returns every value of the named argument in the order they
	// were provided.
	GetArgs(name string) []string
}

// DeploymentOverride replaces the start time and timeout of a deployment.
type DeploymentOverride struct {
	ID        DeploymentID
	StartTime int64
	Timeout   int64
}

// ParseDeploymentOverride parses an override of the form
// deployment:start:timeout.
func ParseDeploymentOverride(s string) (DeploymentOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		str := fmt.Sprintf("version bits parameters malformed, expecting "+
			"deployment:start:end in %q", s)
		return DeploymentOverride{}, contextError(ErrMalformedOverride, str)
	}

	startTime, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		str := fmt.Sprintf("invalid start time %q in %q", fields[1], s)
		return DeploymentOverride{}, contextError(ErrInvalidStartTime, str)
	}
	timeout, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		str := fmt.Sprintf("invalid timeout %q in %q", fields[2], s)
		return DeploymentOverride{}, contextError(ErrInvalidTimeout, str)
	}

	id, ok := DeploymentByName(fields[0])
	if !ok {
		str := fmt.Sprintf("invalid deployment %q in %q", fields[0], s)
		return DeploymentOverride{}, contextError(ErrUnknownDeployment, str)
	}

	return DeploymentOverride{
		ID:        id,
		StartTime: startTime,
		Timeout:   timeout,
	}, nil
}

// ParseDeploymentOverrides parses every value of the vbparams argument in the
// order provided.  A nil source yields no overrides.
func ParseDeploymentOverrides(args ArgSource) ([]DeploymentOverride, error) {
	if args == nil || !args.IsArgSet(VBParamsArg) {
		return nil, nil
	}

	values := args.GetArgs(VBParamsArg)
	overrides := make([]DeploymentOverride, 0, len(values))
	for _, v := range values {
		o, err := ParseDeploymentOverride(v)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// applyDeploymentOverrides replaces the deployment start times and timeouts
// with the passed overrides in order.  Later overrides of the same deployment
// win.
func (p *Params) applyDeploymentOverrides(overrides []DeploymentOverride) error {
	for _, o := range overrides {
		if o.ID >= DefinedDeployments {
			str := fmt.Sprintf("deployment ID %d does not exist",
				uint32(o.ID))
			return contextError(ErrUnknownDeployment, str)
		}
		p.Deployments[o.ID].StartTime = o.StartTime
		p.Deployments[o.ID].Timeout = o.Timeout
		log.Infof("Setting version bits activation parameters for %s to "+
			"start=%d, timeout=%d", o.ID, o.StartTime, o.Timeout)
	}
	return nil
}
