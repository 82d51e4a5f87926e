// FILE: srunauth/src/internal/portal/status.go
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"srunauth/src/internal/checksum"
	"srunauth/src/internal/core"
	"srunauth/src/internal/jsonp"
)

// OnlineInfo is the gateway view of the current session
type OnlineInfo struct {
	Online   bool
	Username string
	IP       string
	Bytes    float64
	Seconds  float64
	Balance  float64

	// error_msg, or the error code, when offline
	Message string
}

// flexNumber accepts numbers that some gateways send as quoted strings
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", data, err)
	}
	*n = flexNumber(v)
	return nil
}

type statusResponse struct {
	Error       string     `json:"error"`
	ErrorMsg    string     `json:"error_msg"`
	UserName    string     `json:"user_name"`
	OnlineIP    string     `json:"online_ip"`
	SumBytes    flexNumber `json:"sum_bytes"`
	SumSeconds  flexNumber `json:"sum_seconds"`
	UserBalance flexNumber `json:"user_balance"`
}

// Status queries rad_user_info for the resolved client address
func (a *Authenticator) Status(ctx context.Context) (*OnlineInfo, error) {
	ip, err := a.ResolveIP(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("callback", core.Callback)
	params.Set("ip", ip)
	params.Set("_", a.timestamp())

	resp, err := a.doer.Get(ctx, a.cfg.API.Status, params)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}

	var body statusResponse
	if err := jsonp.Decode(resp.Body, core.Callback, &body); err != nil {
		return nil, fmt.Errorf("status response: %w", err)
	}

	info := &OnlineInfo{IP: ip}
	if body.Error != "ok" {
		info.Message = body.ErrorMsg
		if info.Message == "" {
			info.Message = body.Error
		}
		a.logger.Debug("msg", "Client offline", "component", "portal", "ip", ip, "message", info.Message)
		return info, nil
	}

	info.Online = true
	info.Username = body.UserName
	info.Bytes = float64(body.SumBytes)
	info.Seconds = float64(body.SumSeconds)
	info.Balance = float64(body.UserBalance)
	if body.OnlineIP != "" {
		info.IP = body.OnlineIP
	}

	a.logger.Debug("msg", "Client online",
		"component", "portal",
		"username", info.Username,
		"ip", info.IP,
		"seconds", info.Seconds)
	return info, nil
}

// LogoutSign computes the rad_user_dm signature
func LogoutSign(unixTime, username, ip string) string {
	return checksum.SHA1Hex(unixTime + username + ip + "1" + unixTime)
}

// Logout drops the session bound to the resolved client address
func (a *Authenticator) Logout(ctx context.Context) (*Result, error) {
	if err := a.cfg.RequireUsername(); err != nil {
		return nil, err
	}

	ip, err := a.ResolveIP(ctx)
	if err != nil {
		return nil, err
	}
	username := a.cfg.FullUsername()
	now := a.now()
	unixTime := strconv.FormatInt(now.Unix(), 10)

	params := url.Values{}
	params.Set("callback", core.Callback)
	params.Set("ip", ip)
	params.Set("username", username)
	params.Set("time", unixTime)
	params.Set("unbind", "1")
	params.Set("sign", LogoutSign(unixTime, username, ip))
	params.Set("_", strconv.FormatInt(now.UnixMilli(), 10))

	resp, err := a.doer.Get(ctx, a.cfg.API.Logout, params)
	if err != nil {
		return nil, fmt.Errorf("logout request failed: %w", err)
	}

	var body struct {
		Error    string `json:"error"`
		ErrorMsg string `json:"error_msg"`
		Res      string `json:"res"`
	}
	if err := jsonp.Decode(resp.Body, core.Callback, &body); err != nil {
		return nil, fmt.Errorf("logout response: %w", err)
	}

	result := &Result{State: StateFailure, Username: username, IP: ip, Message: body.Error}
	if body.Error == "ok" || body.Error == "logout_ok" || body.Res == "ok" {
		result.State = StateSuccess
		if result.Message == "" {
			result.Message = body.Res
		}
	} else if body.ErrorMsg != "" {
		result.Message = body.ErrorMsg
	}

	a.logger.Info("msg", "Logout finished",
		"component", "portal",
		"state", result.State.String(),
		"username", username,
		"ip", ip,
		"message", result.Message)
	return result, nil
}

var _ json.Unmarshaler = (*flexNumber)(nil)
