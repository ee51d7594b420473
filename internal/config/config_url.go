// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// checkServiceURL accepts an http(s) base URL the predictor client can
// append endpoint paths to. A path prefix is fine. Query strings,
// fragments and embedded credentials are not.
func checkServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	case u.Host == "":
		return errors.New("missing host")
	case u.User != nil:
		return errors.New("credentials must not be embedded in the URL")
	case u.RawQuery != "" || u.ForceQuery:
		return errors.New("query string not allowed")
	case u.Fragment != "":
		return errors.New("fragment not allowed")
	}
	return nil
}
