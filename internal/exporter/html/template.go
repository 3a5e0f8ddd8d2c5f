package html

// PreviewTemplate renders the converted record set as a standalone page:
// a summary card plus the full data grid, the browser-openable stand-in
// for checking the conversion before the workbook goes out.
const PreviewTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>拘束時間管理表 変換結果 - {{.GeneratedAt}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Hiragino Sans', 'Meiryo', sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 1.8em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1em;
            opacity: 0.9;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .summary h2 {
            color: #667eea;
            margin-bottom: 15px;
            font-size: 1.3em;
        }

        .summary-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 15px;
        }

        .summary-item {
            text-align: center;
            padding: 12px;
            background: #f8f9fa;
            border-radius: 6px;
        }

        .summary-item .value {
            font-size: 1.6em;
            font-weight: bold;
            color: #667eea;
        }

        .summary-item .label {
            font-size: 0.85em;
            color: #7f8c8d;
        }

        .records {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
            overflow-x: auto;
        }

        table {
            border-collapse: collapse;
            width: 100%;
            font-size: 0.85em;
            white-space: nowrap;
        }

        th {
            background: #667eea;
            color: white;
            padding: 8px 10px;
            position: sticky;
            top: 0;
        }

        td {
            padding: 6px 10px;
            border-bottom: 1px solid #ecf0f1;
        }

        td.num {
            text-align: right;
            font-variant-numeric: tabular-nums;
        }

        tr:hover {
            background: #f8f9fa;
        }

        footer {
            text-align: center;
            color: #95a5a6;
            padding: 20px;
            font-size: 0.85em;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>🚛 拘束時間管理表 変換結果</h1>
            <p>入力元: {{.Source}}</p>
        </header>

        <div class="summary">
            <h2>変換サマリ</h2>
            <div class="summary-grid">
                <div class="summary-item">
                    <div class="value">{{.RowsRead}}</div>
                    <div class="label">読込行数</div>
                </div>
                <div class="summary-item">
                    <div class="value">{{.RecordCount}}</div>
                    <div class="label">レコード数</div>
                </div>
                <div class="summary-item">
                    <div class="value">{{.DriverCount}}</div>
                    <div class="label">乗務員数</div>
                </div>
                <div class="summary-item">
                    <div class="value">{{.Period}}</div>
                    <div class="label">対象期間</div>
                </div>
            </div>
        </div>

        <div class="records">
            <table>
                <thead>
                    <tr>
                        {{- range .Headers}}
                        <th>{{.}}</th>
                        {{- end}}
                    </tr>
                </thead>
                <tbody>
                    {{- range .Rows}}
                    <tr>
                        {{- range .Cells}}
                        <td{{if .Numeric}} class="num"{{end}}>{{.Text}}</td>
                        {{- end}}
                    </tr>
                    {{- end}}
                </tbody>
            </table>
        </div>

        <footer>
            Generated at {{.GeneratedAt}}
        </footer>
    </div>
</body>
</html>`
