// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Profile is a named bundle of deployment configuration.
//
// Each of the five sub-groups is optional: a nil pointer means the profile
// does not configure that step at all. Inside a sub-group an empty string,
// an empty slice or an empty map means "unset" and is eligible for
// backfilling from a default profile of the same name.
type Profile struct {
	// Name identifies the profile in the registry (e.g. "prod", "staging").
	Name string `json:"name" yaml:"name"`

	// Deploy configures the helm deployment into a cluster.
	Deploy *DeployProfile `json:"deploy,omitempty" yaml:"deploy,omitempty"`

	// DockerBuild configures how the docker image is built.
	DockerBuild *DockerBuildProfile `json:"dockerBuild,omitempty" yaml:"dockerBuild,omitempty"`

	// DockerLogin configures the registry login performed before pushing.
	DockerLogin *DockerLoginProfile `json:"dockerLogin,omitempty" yaml:"dockerLogin,omitempty"`

	// DockerPush configures where the built image is pushed.
	DockerPush *DockerPushProfile `json:"dockerPush,omitempty" yaml:"dockerPush,omitempty"`

	// HelmPush configures where the packaged helm chart is pushed.
	HelmPush *HelmPushProfile `json:"helmPush,omitempty" yaml:"helmPush,omitempty"`
}

// DeployProfile describes a helm deployment.
type DeployProfile struct {
	// Attributes are passed to helm as --set key=value pairs.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// HelmDir is the directory holding the chart to install.
	HelmDir string `json:"helmDir,omitempty" yaml:"helmDir,omitempty"`

	// KubeConfig is the path to the kubeconfig used by helm.
	KubeConfig string `json:"kubeConfig,omitempty" yaml:"kubeConfig,omitempty"`

	// TargetNamespaces lists every namespace the chart is installed into.
	TargetNamespaces []string `json:"targetNamespaces,omitempty" yaml:"targetNamespaces,omitempty"`
}

// DockerBuildProfile describes a docker image build.
type DockerBuildProfile struct {
	// PrepareTask names the build step that prepares the docker context.
	PrepareTask string `json:"prepareTask,omitempty" yaml:"prepareTask,omitempty"`

	// DockerDir is the docker build context directory.
	DockerDir string `json:"dockerDir,omitempty" yaml:"dockerDir,omitempty"`

	// Version is the image tag.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// BuildOutputTask names the build step whose output is copied into
	// the docker context.
	BuildOutputTask string `json:"buildOutputTask,omitempty" yaml:"buildOutputTask,omitempty"`
}

// RegistryCredentials holds the registry address and the credentials used
// to authenticate against it. It is shared by [DockerLoginProfile] and
// [DockerPushProfile].
type RegistryCredentials struct {
	AWSProfile    string      `json:"awsProfile,omitempty" yaml:"awsProfile,omitempty"`
	LoginMethod   LoginMethod `json:"loginMethod,omitempty" yaml:"loginMethod,omitempty"`
	RegistryRoot  string      `json:"registryRoot,omitempty" yaml:"registryRoot,omitempty"`
	LoginUsername string      `json:"loginUsername,omitempty" yaml:"loginUsername,omitempty"`
	LoginPassword string      `json:"loginPassword,omitempty" yaml:"loginPassword,omitempty"`
}

// DockerLoginProfile describes a standalone `docker login`.
type DockerLoginProfile struct {
	RegistryCredentials `yaml:",inline"`
}

// DockerPushProfile describes a `docker push` and the login it requires.
type DockerPushProfile struct {
	RegistryCredentials `yaml:",inline"`
}

// HelmPushProfile describes an upload of a packaged chart to a helm
// repository.
type HelmPushProfile struct {
	HelmDir            string `json:"helmDir,omitempty" yaml:"helmDir,omitempty"`
	RepositoryURL      string `json:"repositoryUrl,omitempty" yaml:"repositoryUrl,omitempty"`
	RepositoryUsername string `json:"repositoryUsername,omitempty" yaml:"repositoryUsername,omitempty"`
	RepositoryPassword string `json:"repositoryPassword,omitempty" yaml:"repositoryPassword,omitempty"`
}

// ProfileList is the on-disk and on-wire document that carries profiles.
type ProfileList struct {
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

// Clone returns a deep copy of p. Sub-group pointers, slices and maps of the
// copy never alias the ones of p.
func (p Profile) Clone() Profile {
	out := Profile{Name: p.Name}

	if p.Deploy != nil {
		d := *p.Deploy
		d.Attributes = cloneStringMap(p.Deploy.Attributes)
		d.TargetNamespaces = cloneStringSlice(p.Deploy.TargetNamespaces)
		out.Deploy = &d
	}
	if p.DockerBuild != nil {
		b := *p.DockerBuild
		out.DockerBuild = &b
	}
	if p.DockerLogin != nil {
		l := *p.DockerLogin
		out.DockerLogin = &l
	}
	if p.DockerPush != nil {
		ps := *p.DockerPush
		out.DockerPush = &ps
	}
	if p.HelmPush != nil {
		h := *p.HelmPush
		out.HelmPush = &h
	}

	return out
}

func cloneStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	return maps.Clone(in)
}

// ProfileReport pairs a resolved profile with its validation failures. It
// is the document printed by the CLI and served by the HTTP API.
type ProfileReport struct {
	Profile Profile  `json:"profile" yaml:"profile"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// ProfileReportList is the top-level document printed by the CLI.
type ProfileReportList struct {
	Profiles []ProfileReport `json:"profiles" yaml:"profiles"`
}
