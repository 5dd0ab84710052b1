package server

import (
	"fmt"
	"net/http"
)

// IndexHandler serves the web form. The page posts to /api/simulate and
// renders the returned trades table client-side; it is presentation only and
// carries no logic of its own.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage,
			s.defaults.StartingBalance,
			s.defaults.TargetBalance,
			s.defaults.RiskPercent,
			s.defaults.RewardRatio,
		)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>The Recovery Roadmap</title>
<style>
  body { font-family: monospace; background: #111; color: #eee; max-width: 860px; margin: 2em auto; }
  h1 { color: #7fffd4; }
  label { display: inline-block; width: 220px; }
  input { background: #222; color: #eee; border: 1px solid #444; padding: 4px 8px; width: 120px; }
  button { background: #7fffd4; color: #111; border: none; padding: 6px 16px; cursor: pointer; margin-top: 10px; }
  table { border-collapse: collapse; margin-top: 1em; width: 100%%; }
  th, td { border: 1px solid #333; padding: 4px 10px; text-align: right; }
  th { background: #222; color: #9cf; }
  .error { color: #ff3333; }
  .summary { margin-top: 1em; color: #7fffd4; }
  .note { color: #ffb347; }
</style>
</head>
<body>
<h1>The Recovery Roadmap</h1>
<p>Consecutive winning trades needed to grow an account, assuming perfect execution.</p>
<form id="form">
  <div><label>Current balance ($)</label><input name="current_balance" type="number" step="any" value="%.2f"></div>
  <div><label>Target balance ($)</label><input name="target_balance" type="number" step="any" value="%.2f"></div>
  <div><label>Risk per trade (%%)</label><input name="risk_per_trade_percent" type="number" step="any" value="%.2f"></div>
  <div><label>Risk-reward ratio</label><input name="risk_reward_ratio" type="number" step="any" value="%.2f"></div>
  <button type="submit">Calculate</button>
</form>
<div id="result"></div>
<script>
const form = document.getElementById('form');
const result = document.getElementById('result');
const fmt = n => '$' + n.toLocaleString('en-US', {minimumFractionDigits: 2, maximumFractionDigits: 2});

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const body = {};
  for (const input of form.querySelectorAll('input')) {
    body[input.name] = parseFloat(input.value);
  }
  const resp = await fetch('/api/simulate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body),
  });
  const data = await resp.json();
  if (!resp.ok) {
    result.innerHTML = '<p class="error">' + data.detail + '</p>';
    return;
  }
  let html = '<table><tr><th>Trade #</th><th>Account Balance</th><th>Risk Amount</th><th>Profit Amount</th></tr>';
  for (const t of data.trades) {
    html += '<tr><td>' + t.trade_number + '</td><td>' + fmt(t.account_balance) +
            '</td><td>' + fmt(t.risk_amount) + '</td><td>' + fmt(t.profit_amount) + '</td></tr>';
  }
  html += '</table>';
  const s = data.summary;
  html += '<p class="summary">Total trades: ' + s.total_trades +
          ' &middot; Max risk: ' + fmt(s.max_risk_taken) +
          ' &middot; Final balance: ' + fmt(s.final_balance) + '</p>';
  html += '<p class="note">Reality check: assumes zero losses. At a 50%% win rate, expect roughly ' +
          (s.total_trades * 2) + ' trades.</p>';
  result.innerHTML = html;
});
</script>
</body>
</html>`
