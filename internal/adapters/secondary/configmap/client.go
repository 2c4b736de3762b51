package configmap

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"phishing-url-service/internal/config"
	ports "phishing-url-service/internal/core/ports/output"
)

// Scheme is the location scheme served by this source:
// configmap://<namespace>/<name>/<key>.
const Scheme = "configmap"

var configMapGVR = schema.GroupVersionResource{
	Group:    "",
	Version:  "v1",
	Resource: "configmaps",
}

type configMapSource struct {
	client dynamic.Interface
}

// NewConfigMapSource creates an artifact source reading ConfigMap keys
// through the Kubernetes API.
func NewConfigMapSource(cfg *config.KubernetesConfig) (ports.ArtifactSource, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return NewConfigMapSourceWithClient(client), nil
}

func NewConfigMapSourceWithClient(client dynamic.Interface) ports.ArtifactSource {
	return &configMapSource{client: client}
}

func (s *configMapSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	namespace, name, key, err := parseLocation(location)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.Resource(configMapGVR).Namespace(namespace).
		Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get configmap %s/%s: %w", namespace, name, err)
	}

	return readKey(obj, key)
}

func readKey(obj *unstructured.Unstructured, key string) ([]byte, error) {
	if encoded, found, _ := unstructured.NestedString(obj.Object, "binaryData", key); found {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode binaryData %q: %w", key, err)
		}
		return data, nil
	}
	if text, found, _ := unstructured.NestedString(obj.Object, "data", key); found {
		return []byte(text), nil
	}
	return nil, fmt.Errorf("configmap %s/%s has no key %q", obj.GetNamespace(), obj.GetName(), key)
}

func parseLocation(location string) (namespace, name, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", "", fmt.Errorf("parse location: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if u.Scheme != Scheme || u.Host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf("invalid configmap location %q, want configmap://<namespace>/<name>/<key>", location)
	}
	return u.Host, parts[0], parts[1], nil
}
